package ghupload

import (
	"context"
	"crypto/md5"
	"encoding/hex"

	"github.com/google/go-github/v59/github"
	"golang.org/x/oauth2"
)

// CalculateHash names uploaded files by content so re-uploads of the same
// image land on the same path.
func CalculateHash(content []byte) string {
	sum := md5.Sum(content)
	return hex.EncodeToString(sum[:])
}

// GithubUpload pushes fileContent to pathFile in the image repository and
// returns the created content, whose HTMLURL is what gets stored on the
// owning document.
func GithubUpload(accessToken string, authorName string, authorEmail string, fileContent []byte, githubOrg string, githubRepo string, pathFile string, replace bool) (*github.RepositoryContentResponse, *github.Response, error) {
	ctx := context.Background()

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	client := github.NewClient(oauth2.NewClient(ctx, ts))

	opts := &github.RepositoryContentFileOptions{
		Message: github.String("upload " + pathFile),
		Content: fileContent,
		Branch:  github.String("main"),
		Committer: &github.CommitAuthor{
			Name:  github.String(authorName),
			Email: github.String(authorEmail),
		},
	}

	// Replacing an existing file needs its blob SHA.
	if replace {
		existing, _, _, err := client.Repositories.GetContents(ctx, githubOrg, githubRepo, pathFile, nil)
		if err == nil && existing != nil {
			opts.SHA = existing.SHA
		}
	}

	return client.Repositories.CreateFile(ctx, githubOrg, githubRepo, pathFile, opts)
}
