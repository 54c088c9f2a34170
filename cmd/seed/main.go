package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/yungbote/careerhub-backend/internal/app"
	"github.com/yungbote/careerhub-backend/internal/seed"
)

func main() {
	var path string
	var dryRun bool
	flag.StringVar(&path, "file", "seed.yaml", "YAML file with catalog rows")
	flag.BoolVar(&dryRun, "dry-run", false, "validate the file without writing")
	flag.Parse()

	f, err := seed.Load(path)
	if err != nil {
		fmt.Printf("load %s: %v\n", path, err)
		os.Exit(1)
	}
	if dryRun {
		fmt.Printf("ok: %d careers, %d opportunities, %d resources, %d training programs\n",
			len(f.Careers), len(f.Opportunities), len(f.Resources), len(f.TrainingPrograms))
		return
	}

	application, err := app.New()
	if err != nil {
		fmt.Printf("init app: %v\n", err)
		os.Exit(1)
	}
	defer application.Close()

	seeder := seed.NewSeeder(application.DB, application.Log, seed.Deps{
		UserRepo:     application.Repos.User,
		CareerRepo:   application.Repos.Career,
		OppRepo:      application.Repos.Opportunity,
		ResourceRepo: application.Repos.Resource,
		ProgramRepo:  application.Repos.TrainingProgram,
	})
	res, err := seeder.Apply(context.Background(), f)
	if err != nil {
		application.Log.Error("seed failed", "error", err)
		return
	}
	fmt.Printf("inserted: admin=%v careers=%d opportunities=%d resources=%d training_programs=%d (skipped %d)\n",
		res.Admin, res.Careers, res.Opportunities, res.Resources, res.TrainingPrograms, res.Skipped)
}
