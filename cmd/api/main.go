package main

import (
	"context"

	"github.com/ddekshina/ProjectProbe/api"
	"github.com/ddekshina/ProjectProbe/config"
	"github.com/ddekshina/ProjectProbe/db"
	"github.com/ddekshina/ProjectProbe/domains/analysis"
	"github.com/ddekshina/ProjectProbe/domains/cache"
	"github.com/ddekshina/ProjectProbe/domains/enhance"
	"github.com/ddekshina/ProjectProbe/domains/repos"
	"github.com/ddekshina/ProjectProbe/libs/githubapi"
	"github.com/ddekshina/ProjectProbe/libs/gitrepo"
	"github.com/ddekshina/ProjectProbe/pkg/logger"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func main() {
	config.MustLoad("")

	fx.New(
		fx.Provide(
			logger.New,
			newAnalyzer,
		),
		fx.Decorate(func(l *zap.Logger) *zap.Logger {
			return l.With(zap.String("service", "projectprobe"))
		}),
		fx.Invoke(
			db.Init,
			api.Run,
		),
		fx.WithLogger(func(l *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{
				Logger: l,
			}
		}),
	).Run()
}

func newAnalyzer(l *zap.Logger) (*analysis.Analyzer, error) {
	resultCache, err := cache.NewFromConfig(l)
	if err != nil {
		return nil, err
	}

	// enhance.New returns nil without a Groq key; leave the interface nil
	// in that case rather than wrapping a typed nil.
	var enhancer analysis.Enhancer
	if e := enhance.New(l); e != nil {
		enhancer = e
	}

	snapshot := func(ctx context.Context, repoURL string) (repos.CodeBundle, error) {
		return gitrepo.Snapshot(ctx, l, repoURL)
	}

	return analysis.New(l, githubapi.New(l), snapshot, enhancer, resultCache), nil
}
