package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ps "github.com/mitchellh/go-ps"

	"github.com/mchou/travelpulse/internal/constants"
	"github.com/mchou/travelpulse/internal/storage"
)

type DoctorCmd struct {
	ConfigDir string `kong:"-"`
}

// Run checks the health of both storage backends and the single-writer
// assumption the synchronizer relies on.
func (c *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("travelpulse doctor")
	fmt.Println()

	// Storage reachability.
	if f, ok := ctx.Docs.(*storage.Fallback); ok && f.RemoteConfigured() {
		if err := f.Ping(ctx.Ctx); err != nil {
			fmt.Printf("  ✗ remote store: %v (operations fall back to the local cache)\n", err)
		} else {
			fmt.Println("  ✓ remote store reachable")
		}
	} else {
		fmt.Println("  - remote store not configured (local-only mode)")
	}

	// Config dir writability.
	if c.ConfigDir != "" {
		probe := filepath.Join(c.ConfigDir, ".doctor-probe")
		if err := os.WriteFile(probe, []byte("ok"), 0600); err != nil {
			fmt.Printf("  ✗ config dir not writable: %v\n", err)
		} else {
			os.Remove(probe)
			fmt.Printf("  ✓ config dir writable: %s\n", c.ConfigDir)
		}
	}

	// Concurrent instances break the one-writer-at-a-time discipline the
	// debounced synchronizer assumes.
	if others, err := otherInstances(); err == nil && len(others) > 0 {
		fmt.Printf("  ! %d other %s process(es) running; concurrent edits can clobber each other\n",
			len(others), constants.AppName)
	} else {
		fmt.Println("  ✓ no other running instances")
	}

	return nil
}

func otherInstances() ([]int, error) {
	procs, err := ps.Processes()
	if err != nil {
		return nil, err
	}
	var pids []int
	for _, p := range procs {
		if p.Pid() == os.Getpid() {
			continue
		}
		name := strings.TrimSuffix(p.Executable(), ".exe")
		if name == constants.AppName {
			pids = append(pids, p.Pid())
		}
	}
	return pids, nil
}
