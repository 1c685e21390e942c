package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cheggaaa/pb/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"repo-mirror/gh"
	"repo-mirror/helpers"
	"repo-mirror/mirror"
	"repo-mirror/model"
)

var (
	mirrorDest    string
	mirrorRef     string
	mirrorPath    string
	mirrorExclude []string
)

var mirrorCmd = &cobra.Command{
	Use:   "mirror <github-url | owner/repo>",
	Short: "Mirror a repository subtree into a local directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runMirror,
}

func init() {
	mirrorCmd.Flags().StringVarP(&mirrorDest, "dest", "d", "", "destination directory (default: basename of the source path)")
	mirrorCmd.Flags().StringVarP(&mirrorRef, "ref", "r", "", "branch, tag, or commit (default: repository default branch)")
	mirrorCmd.Flags().StringVarP(&mirrorPath, "path", "p", "", "path within the repository (for owner/repo form)")
	mirrorCmd.Flags().StringSliceVar(&mirrorExclude, "exclude", nil, "path prefixes to skip")
	rootCmd.AddCommand(mirrorCmd)
}

func runMirror(cmd *cobra.Command, args []string) error {
	components, err := resolveComponents(args[0])
	if err != nil {
		return err
	}
	if mirrorRef != "" {
		components.Ref = mirrorRef
	}

	token, err := githubToken()
	if err != nil {
		return err
	}
	client := gh.NewClient(token)

	ctx := context.Background()
	if components.Ref == "" {
		ref, err := client.ResolveDefaultRef(ctx, components.Owner, components.Repository)
		if err != nil {
			logger.Warn("could not resolve default branch, deferring to the API default",
				zap.String("repo", components.Owner+"/"+components.Repository),
				zap.Error(err))
		} else {
			components.Ref = ref
		}
	}

	sourcePath := components.Dir
	if components.IsFile {
		sourcePath = components.FilePath
	}

	dest := mirrorDest
	if dest == "" {
		dest = filepath.Base(sourcePath)
		if dest == "." || dest == "/" {
			dest = components.Repository
		}
	}

	logger.Debug("starting mirror",
		zap.String("repo", components.Owner+"/"+components.Repository),
		zap.String("path", sourcePath),
		zap.String("ref", components.Ref),
		zap.String("dest", dest))

	bar := pb.Full.Start64(0)
	defer bar.Finish()

	source := &progressSource{source: client, bar: bar}
	m := mirror.New(source, mirror.WithConcurrencyLimit(cfg.ConcurrentDownloadLimit))

	req := mirror.Request{
		Owner:       components.Owner,
		Repository:  components.Repository,
		SourcePath:  sourcePath,
		Destination: dest,
		Ref:         components.Ref,
		Filter:      excludeFilter(mirrorExclude),
	}
	if err := m.Run(ctx, req); err != nil {
		return err
	}

	summary := fmt.Sprintf("[-] Mirrored %s/%s:%s into %s (%s)",
		components.Owner, components.Repository, sourcePath, dest,
		helpers.FormatBytes(bar.Current()))
	fmt.Println(helpers.Colorize(summary, helpers.Green))
	return nil
}

// resolveComponents accepts either a full GitHub URL or a bare owner/repo
// identifier combined with --path.
func resolveComponents(arg string) (model.RepoURLComponents, error) {
	if strings.Contains(arg, "://") {
		return helpers.ParseRepoURL(arg)
	}
	owner, repository, err := helpers.ParseRepoIdentifier(arg)
	if err != nil {
		return model.RepoURLComponents{}, err
	}
	return model.RepoURLComponents{
		Owner:      owner,
		Repository: repository,
		Dir:        mirrorPath,
	}, nil
}

func excludeFilter(prefixes []string) mirror.Filter {
	if len(prefixes) == 0 {
		return nil
	}
	return func(sourcePath, _ string) bool {
		for _, prefix := range prefixes {
			if strings.HasPrefix(sourcePath, prefix) {
				return false
			}
		}
		return true
	}
}

// progressSource wraps a mirror.Source and grows the progress bar with every
// downloaded payload.
type progressSource struct {
	source mirror.Source
	bar    *pb.ProgressBar
}

func (p *progressSource) ListContents(ctx context.Context, owner, repository, dir, ref string) ([]model.ContentEntry, error) {
	return p.source.ListContents(ctx, owner, repository, dir, ref)
}

func (p *progressSource) Download(ctx context.Context, url string) ([]byte, error) {
	content, err := p.source.Download(ctx, url)
	if err != nil {
		return nil, err
	}
	p.bar.SetTotal(p.bar.Total() + int64(len(content)))
	p.bar.Add(len(content))
	return content, nil
}
