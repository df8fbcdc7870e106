package cli

import (
	"errors"
	"fmt"

	"github.com/mchou/travelpulse/internal/keyring"
	"github.com/mchou/travelpulse/internal/storage"
)

type ConfigSetConnectionCmd struct {
	ConnStr string `arg:"" help:"PostgreSQL connection string for the remote store."`
}

// Run stores the remote connection string in the OS keyring. Embedded
// passwords are accepted here, unlike on the command line: the keyring is
// where they belong.
func (c *ConfigSetConnectionCmd) Run(ctx *Context) error {
	if err := keyring.SetConnectionString(c.ConnStr); err != nil {
		return err
	}
	fmt.Println("✓ Remote connection stored in OS keyring")
	return nil
}

type ConfigDeleteConnectionCmd struct{}

func (c *ConfigDeleteConnectionCmd) Run(ctx *Context) error {
	err := keyring.DeleteConnectionString()
	if errors.Is(err, keyring.ErrNotFound) {
		fmt.Println("No remote connection was configured.")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Println("✓ Remote connection removed; operating local-only from now on")
	return nil
}

type ConfigShowCmd struct{}

func (c *ConfigShowCmd) Run(ctx *Context) error {
	if f, ok := ctx.Docs.(*storage.Fallback); ok && f.RemoteConfigured() {
		fmt.Println("Remote store: configured (writes mirror to the local cache)")
	} else {
		fmt.Println("Remote store: not configured (local cache only)")
	}
	return nil
}
