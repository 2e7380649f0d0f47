package cmd

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/aallbrig/verse/constraint"
	"github.com/aallbrig/verse/menu"
)

// buildRequest is a build invocation with its values converted.
type buildRequest struct {
	Sources []string
	Out     string
	Jobs    int
	Defines map[string]string
}

func newBuildRequest(inv *menu.Invocation) (buildRequest, error) {
	out, _ := inv.ValueNamed("out")
	jobs, err := constraint.ParseInt(first(inv.ValueNamed("jobs")))
	if err != nil {
		return buildRequest{}, fmt.Errorf("jobs: %w", err)
	}
	req := buildRequest{
		Sources: inv.Rest(),
		Out:     out,
		Jobs:    jobs,
		Defines: map[string]string{},
	}
	for _, d := range inv.ValuesNamed("define") {
		name, value, _ := strings.Cut(d, "=")
		req.Defines[name] = value
	}
	return req, nil
}

func first(v string, _ bool) string { return v }

// runBuild prints the normalized build request. Code generation happens
// elsewhere.
func (a *app) runBuild(cmd *cobra.Command, inv *menu.Invocation) error {
	if inv.FlagNamed("verbose") {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	}
	req, err := newBuildRequest(inv)
	if err != nil {
		return err
	}
	log.Debug().
		Strs("sources", req.Sources).
		Str("out", req.Out).
		Int("jobs", req.Jobs).
		Msg("build request")

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "sources: %s\n", strings.Join(req.Sources, " "))
	fmt.Fprintf(w, "out:     %s\n", req.Out)
	fmt.Fprintf(w, "jobs:    %d\n", req.Jobs)
	for _, d := range inv.ValuesNamed("define") {
		fmt.Fprintf(w, "define:  %s\n", d)
	}
	return nil
}
