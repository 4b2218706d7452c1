package shell

import (
	gogit "github.com/go-git/go-git/v5"
)

// BranchFunc reports the branch label for a directory, or "" when none
// applies.
type BranchFunc func(dir string) string

// HeadLabel reports the branch checked out at dir, walking up to find the
// enclosing repository. A detached HEAD yields an abbreviated hash. Any
// failure yields the empty label; branch lookup is best-effort and never
// surfaces an error.
func HeadLabel(dir string) string {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return ""
	}
	head, err := repo.Head()
	if err != nil {
		return ""
	}
	if head.Name().IsBranch() {
		return head.Name().Short()
	}
	hash := head.Hash().String()
	if len(hash) > 7 {
		hash = hash[:7]
	}
	return hash
}
