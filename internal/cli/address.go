package cli

import (
	"fmt"
	"io"

	"fractional-asset-registry/internal/core/domain"

	"github.com/spf13/cobra"
)

// NewAddressCommand creates the address command group.
func NewAddressCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "address",
		Short: "Work with account addresses",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "derive <part>...",
		Short: "Derive a deterministic address from labels",
		Long: `Derive an address from the Keccak-256 hash of the given labels, the
same derivation the server uses for vault accounts. Useful for seeding
registry, factory and collector accounts.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr := domain.DeriveAddress(args...)
			return emit(cmd.OutOrStdout(), rootOpts.Format, map[string]any{"address": addr, "parts": args}, func(w io.Writer) {
				fmt.Fprintln(w, addr)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "check <address>",
		Short: "Validate and canonicalise an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, ok := domain.ParseAddress(args[0])
			if !ok {
				return fmt.Errorf("invalid address %q", args[0])
			}
			return emit(cmd.OutOrStdout(), rootOpts.Format, map[string]any{"address": addr, "zero": addr.IsZero()}, func(w io.Writer) {
				fmt.Fprintln(w, addr)
			})
		},
	})

	return cmd
}
