package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/andybons/bailey/internal/agent"
	"github.com/andybons/bailey/internal/config"
	"github.com/andybons/bailey/internal/container"
	"github.com/andybons/bailey/internal/credential"
	"github.com/andybons/bailey/internal/doctor"
	"github.com/andybons/bailey/internal/ui"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnostic information about the bailey environment",
	Long: `Displays diagnostic information for debugging bailey.

This command shows:
- Bailey version and platform
- Container runtime status (docker/podman)
- Per-agent image status
- Per-agent credential status (paths only, never values)`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	globalCfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Println(ui.Bold("Bailey Doctor"))
	fmt.Println()

	ctx := context.Background()
	rt, rtErr := selectRuntime(ctx, globalCfg)

	reg := doctor.NewRegistry(
		&versionSection{},
		&runtimeSection{rt: rt, err: rtErr},
		&imageSection{rt: rt},
		&credentialSection{},
	)

	for _, section := range reg.Sections() {
		ui.Section(section.Name())
		if err := section.Print(os.Stdout); err != nil {
			fmt.Printf("%s Error: %v\n", ui.FailTag(), err)
		}
		fmt.Println()
	}

	return nil
}

// versionSection shows platform and version info.
type versionSection struct{}

func (s *versionSection) Name() string { return "Version" }

func (s *versionSection) Print(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Version:\t%s\n", version)
	fmt.Fprintf(tw, "Platform:\t%s/%s\n", runtime.GOOS, runtime.GOARCH)
	return tw.Flush()
}

// runtimeSection shows which container CLIs are installed and which one
// bailey selected.
type runtimeSection struct {
	rt  container.Runtime
	err error
}

func (s *runtimeSection) Name() string { return "Container Runtime" }

func (s *runtimeSection) Print(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	var available []string
	for _, name := range []string{"docker", "podman"} {
		if _, err := exec.LookPath(name); err == nil {
			available = append(available, name)
		}
	}
	if len(available) > 0 {
		fmt.Fprintf(tw, "Installed:\t%s\n", strings.Join(available, ", "))
	} else {
		fmt.Fprintln(tw, "Installed:\tnone")
	}

	if s.err != nil {
		fmt.Fprintf(tw, "Selected:\t%s %v\n", ui.FailTag(), s.err)
	} else {
		fmt.Fprintf(tw, "Selected:\t%s %s\n", ui.OKTag(), s.rt.Name())
	}

	return tw.Flush()
}

// imageSection shows whether each agent's image has been built.
type imageSection struct {
	rt container.Runtime
}

func (s *imageSection) Name() string { return "Images" }

func (s *imageSection) Print(w io.Writer) error {
	if s.rt == nil {
		fmt.Fprintln(w, "No runtime available; cannot check images")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, name := range agent.Names() {
		spec := agent.Get(name)
		exists, err := s.rt.ImageExists(context.Background(), spec.Image)
		switch {
		case err != nil:
			fmt.Fprintf(tw, "%s:\t%s %v\n", spec.Image, ui.FailTag(), err)
		case exists:
			fmt.Fprintf(tw, "%s:\t%s built\n", spec.Image, ui.OKTag())
		default:
			fmt.Fprintf(tw, "%s:\t%s not built (bailey %s builds it on first use)\n",
				spec.Image, ui.Dim("—"), name)
		}
	}
	return tw.Flush()
}

// credentialSection shows which credential sources resolve. Only source
// names are printed, never values.
type credentialSection struct{}

func (s *credentialSection) Name() string { return "Credentials" }

func (s *credentialSection) Print(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, name := range agent.Names() {
		spec := agent.Get(name)
		fmt.Fprintf(tw, "%s:\n", name)
		statuses := credential.Check(spec, credential.Options{})
		if len(statuses) == 0 {
			fmt.Fprintln(tw, "  (no credential sources)")
			continue
		}
		for _, st := range statuses {
			tag := ui.Dim("—")
			if st.Available {
				tag = ui.OKTag()
			}
			fmt.Fprintf(tw, "  %s\t%s\n", st.Source, tag)
		}
	}
	return tw.Flush()
}
