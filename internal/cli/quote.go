package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"fractional-asset-registry/config"
	"fractional-asset-registry/internal/core/domain"

	"github.com/spf13/cobra"
)

type quoteOptions struct {
	valuation   uint64
	feeBps      int64 // -1 = use registry.transfer_fee_bps
	overrideBps int64 // -1 = no per-asset override
	royaltyBps  uint64
	recipients  []string
}

// NewQuoteCommand creates the quote command.
func NewQuoteCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &quoteOptions{}

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Preview the fees of a fee-bearing transfer",
		Long: `Compute the platform fee, royalty split and total a fee-bearing transfer
of an asset with the given valuation would charge.

Recipients are given as <address>=<share_bps> and their shares must not
exceed 10000 in total.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuote(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().Uint64Var(&opts.valuation, "valuation", 0, "asset valuation (required)")
	cmd.Flags().Int64Var(&opts.feeBps, "fee-bps", -1, "platform transfer fee in bps (defaults to registry.transfer_fee_bps)")
	cmd.Flags().Int64Var(&opts.overrideBps, "override-bps", -1, "per-asset transfer fee override in bps")
	cmd.Flags().Uint64Var(&opts.royaltyBps, "royalty-bps", 0, "asset royalty rate in bps")
	cmd.Flags().StringArrayVar(&opts.recipients, "recipient", nil, "royalty recipient as <address>=<share_bps> (repeatable)")
	_ = cmd.MarkFlagRequired("valuation")

	return cmd
}

func runQuote(rootOpts *RootOptions, opts *quoteOptions, cmd *cobra.Command) error {
	feeBps := opts.feeBps
	if feeBps < 0 {
		cfg, err := config.Load(rootOpts.ConfigPath)
		if err != nil {
			return err
		}
		feeBps = int64(cfg.Registry.TransferFeeBps)
	}
	if uint64(feeBps) > domain.MaxFeeBps {
		return fmt.Errorf("fee %d exceeds the %d bps cap", feeBps, domain.MaxFeeBps)
	}
	if opts.royaltyBps > domain.MaxFeeBps {
		return fmt.Errorf("royalty %d exceeds the %d bps cap", opts.royaltyBps, domain.MaxFeeBps)
	}

	asset := &domain.Asset{Valuation: opts.valuation, RoyaltyBps: opts.royaltyBps}
	if opts.overrideBps >= 0 {
		if uint64(opts.overrideBps) > domain.MaxFeeBps {
			return fmt.Errorf("override %d exceeds the %d bps cap", opts.overrideBps, domain.MaxFeeBps)
		}
		override := uint64(opts.overrideBps)
		asset.TransferFeeOverride = &override
	}
	for _, raw := range opts.recipients {
		r, err := parseRecipient(raw)
		if err != nil {
			return err
		}
		asset.Royalties = append(asset.Royalties, r)
	}
	if asset.RoyaltyShareTotal() > domain.BpsDenominator {
		return fmt.Errorf("recipient shares total %d, above %d", asset.RoyaltyShareTotal(), domain.BpsDenominator)
	}

	quote, ok := domain.QuoteTransfer(asset, uint64(feeBps))
	if !ok {
		return fmt.Errorf("quote overflows for valuation %d", opts.valuation)
	}

	return emit(cmd.OutOrStdout(), rootOpts.Format, quote, func(w io.Writer) {
		fmt.Fprintf(w, "valuation     %d\n", quote.Valuation)
		fmt.Fprintf(w, "platform fee  %d (%d bps)\n", quote.PlatformFee, quote.FeeBps)
		fmt.Fprintf(w, "royalty       %d (%d bps)\n", quote.Royalty, quote.RoyaltyBps)
		for _, p := range quote.Payouts {
			fmt.Fprintf(w, "  %s  %d\n", p.Recipient, p.Amount)
		}
		fmt.Fprintf(w, "total         %d\n", quote.Total)
	})
}

func parseRecipient(raw string) (domain.RoyaltyRecipient, error) {
	addrPart, sharePart, found := strings.Cut(raw, "=")
	if !found {
		return domain.RoyaltyRecipient{}, fmt.Errorf("recipient %q: want <address>=<share_bps>", raw)
	}
	addr, ok := domain.ParseAddress(addrPart)
	if !ok || addr.IsZero() {
		return domain.RoyaltyRecipient{}, fmt.Errorf("recipient %q: invalid address", raw)
	}
	share, err := strconv.ParseUint(sharePart, 10, 64)
	if err != nil || share == 0 || share > domain.BpsDenominator {
		return domain.RoyaltyRecipient{}, fmt.Errorf("recipient %q: share must be 1..%d", raw, domain.BpsDenominator)
	}
	return domain.RoyaltyRecipient{Recipient: addr, ShareBps: share}, nil
}
