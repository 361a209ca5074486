package project

// Changed returns the local files whose content differs from their remote
// counterpart, or that don't exist remotely at all. Remote files are matched
// by the local path they would materialize to, so a file renamed only on the
// remote side shows up as a new local file rather than a rename. Files that
// exist remotely but not locally are not reported; this answers "what would
// pushing upload".
func Changed(local, remote []File) []File {
	remoteByPath := map[string]File{}
	for _, f := range remote {
		remoteByPath[f.LocalPath] = f
	}

	var changed []File
	for _, f := range local {
		counterpart, ok := remoteByPath[f.LocalPath]
		if !ok || counterpart.Source != f.Source {
			changed = append(changed, f)
		}
	}
	return changed
}
