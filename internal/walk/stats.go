package walk

import (
	"fmt"
	"io"
)

// Stats counts what a walk visited. Path lists are only retained when
// TrackPaths is set, since they exist purely for verbose diagnostics.
type Stats struct {
	Folders int
	Files   int

	TrackPaths  bool
	FolderPaths []string
	FilePaths   []string
}

func (st *Stats) addFolder(path string) {
	st.Folders++
	if st.TrackPaths {
		st.FolderPaths = append(st.FolderPaths, path)
	}
}

func (st *Stats) addFile(path string) {
	st.Files++
	if st.TrackPaths {
		st.FilePaths = append(st.FilePaths, path)
	}
}

// Print writes the visit counters, and the visited paths when tracked, in
// the diagnostic stream format.
func (st *Stats) Print(w io.Writer) {
	fmt.Fprintf(w, "[INFO] Visited folders: %d\n", st.Folders)
	fmt.Fprintf(w, "[INFO] Visited files: %d\n", st.Files)

	if !st.TrackPaths {
		return
	}
	for _, path := range st.FolderPaths {
		fmt.Fprintf(w, "[INFO] Folder: %s\n", path)
	}
	for _, path := range st.FilePaths {
		fmt.Fprintf(w, "[INFO] File: %s\n", path)
	}
}
