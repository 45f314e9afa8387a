package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/abase_form_kit/internal/adapters/viacep"
	"github.com/SscSPs/abase_form_kit/internal/apperrors"
	portssvc "github.com/SscSPs/abase_form_kit/internal/core/ports/services"
	"github.com/SscSPs/abase_form_kit/internal/core/services"
	"github.com/SscSPs/abase_form_kit/internal/platform/config"
	"github.com/SscSPs/abase_form_kit/internal/utils"
	"github.com/SscSPs/abase_form_kit/internal/utils/brl"
	"github.com/SscSPs/abase_form_kit/pkg/logger"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "moneyfmt",
		Short:         "BRL money and CEP form helpers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newParseCmd(),
		newFormatCmd("display", "Print the display form, e.g. R$ 1.234,56", brl.FormatDisplay),
		newFormatCmd("canonical", "Print the canonical form sent to servers, e.g. 1234.56", brl.FormatCanonical),
		newFormatCmd("editable", "Print the form shown while editing, e.g. 1234,5", brl.FormatEditable),
		newTypeCmd(),
		newCEPCmd(),
		newDevTokenCmd(),
	)
	return root
}

func newParseCmd() *cobra.Command {
	var strategyName string
	cmd := &cobra.Command{
		Use:   "parse VALUE...",
		Short: "Show every rendering of each value",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy, err := brl.ParseStrategy(strategyName)
			if err != nil {
				return err
			}
			moneySvc := services.NewMoneyService(strategy)
			out := cmd.OutOrStdout()
			for _, arg := range args {
				r := moneySvc.ParseValue(arg, strategy)
				fmt.Fprintf(out, "%q\tcents=%d\tcanonical=%s\tdisplay=%s\teditable=%s\n",
					arg, r.Cents, r.Canonical, r.Display, r.Editable)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&strategyName, "strategy", "s", "blur", "parse as typed text (blur) or as accumulated digits (digits)")
	return cmd
}

func newFormatCmd(name, short string, format func(brl.Amount) string) *cobra.Command {
	return &cobra.Command{
		Use:   name + " VALUE...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				fmt.Fprintln(cmd.OutOrStdout(), format(brl.Parse(arg)))
			}
			return nil
		},
	}
}

func newTypeCmd() *cobra.Command {
	var strategyName, initial string
	cmd := &cobra.Command{
		Use:   "type KEYSTROKES",
		Short: "Replay typing into a masked money field, then blur and submit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy, err := brl.ParseStrategy(strategyName)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			f := brl.NewField(strategy, initial)

			fmt.Fprintf(out, "focus\t%q\n", f.Focus())
			var typed strings.Builder
			typed.WriteString(f.Value())
			for _, r := range args[0] {
				typed.WriteRune(r)
				shown := f.Input(typed.String())
				fmt.Fprintf(out, "key %q\t%q\n", r, shown)
				typed.Reset()
				typed.WriteString(shown)
			}
			fmt.Fprintf(out, "blur\t%q\traw=%s\n", f.Blur(), f.Raw())
			fmt.Fprintf(out, "submit\t%q\n", f.Submit())
			return nil
		},
	}
	cmd.Flags().StringVarP(&strategyName, "strategy", "s", "blur", "blur or digits")
	cmd.Flags().StringVar(&initial, "initial", "", "value rendered by the server before typing")
	return cmd
}

func newCEPCmd() *cobra.Command {
	var (
		baseURL  string
		debounce time.Duration
		timeout  time.Duration
	)
	cmd := &cobra.Command{
		Use:   "cep",
		Short: "Read CEP keystrokes from stdin, one field value per line, and look them up",
		Long: `Each stdin line is the CEP field's text after a keystroke. Lookups are
debounced like the registration form; end of input acts as leaving the field.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if baseURL == "" {
				baseURL = cfg.ViaCEPBaseURL
			}
			if debounce <= 0 {
				debounce = cfg.CEPDebounce
			}
			if timeout <= 0 {
				timeout = cfg.ViaCEPTimeout
			}

			log := logger.New(logger.Options{Service: "moneyfmt", Env: "cli", Level: "error", Output: cmd.ErrOrStderr()})
			client, err := viacep.NewClient(viacep.Config{BaseURL: baseURL, Timeout: timeout, CacheSize: cfg.CEPCacheSize}, log)
			if err != nil {
				return err
			}
			return runCEPSession(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), services.NewAddressService(client), debounce, timeout)
		},
	}
	cmd.Flags().StringVar(&baseURL, "base-url", "", "CEP directory base URL (defaults to VIACEP_BASE_URL)")
	cmd.Flags().DurationVar(&debounce, "debounce", 0, "pause before a typed CEP is looked up (defaults to CEP_DEBOUNCE)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "lookup timeout (defaults to VIACEP_TIMEOUT)")
	return cmd
}

// runCEPSession feeds lines from in to a CEPLookupSession and prints each
// delivered result to out.
func runCEPSession(ctx context.Context, in io.Reader, out io.Writer, lookup portssvc.AddressReaderSvc, debounce, wait time.Duration) error {
	if ctx == nil {
		ctx = context.Background()
	}
	var (
		mu   sync.Mutex
		last uint64
		done = make(chan struct{}, 1)
	)
	session := services.NewCEPLookupSession(ctx, lookup, debounce, func(r services.CEPLookupResult) {
		mu.Lock()
		defer mu.Unlock()
		last = r.Seq
		switch {
		case r.Err == nil:
			a := r.Address
			fmt.Fprintf(out, "%s\t%s, %s, %s/%s\n", r.CEP, a.Street, a.Neighborhood, a.City, a.State)
		case errors.Is(r.Err, apperrors.ErrNotFound):
			fmt.Fprintf(out, "%s\t%s\n", r.CEP, services.MsgCEPNotFound)
		default:
			fmt.Fprintf(out, "%s\t%s (%v)\n", r.CEP, services.MsgCEPFailed, r.Err)
		}
		select {
		case done <- struct{}{}:
		default:
		}
	})
	defer session.Close()

	var field string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		field = session.Input(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}

	seq := session.Blur(field)
	if seq == 0 {
		return nil
	}
	deadline := time.After(wait + time.Second)
	for {
		mu.Lock()
		finished := last >= seq
		mu.Unlock()
		if finished {
			return nil
		}
		select {
		case <-done:
		case <-deadline:
			return fmt.Errorf("timed out waiting for CEP %s", field)
		}
	}
}

func newDevTokenCmd() *cobra.Command {
	var (
		userID string
		ttl    time.Duration
	)
	cmd := &cobra.Command{
		Use:   "dev-token",
		Short: "Mint a JWT for calling the preferences API locally",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if cfg.IsProduction {
				return errors.New("refusing to mint a development token with IS_PRODUCTION set")
			}
			if ttl <= 0 {
				ttl = cfg.JWTExpiryDuration
			}
			token, err := utils.GenerateJWT(userID, cfg.JWTSecret, ttl, cfg.JWTIssuer)
			if err != nil {
				return err
			}
			slog.Debug("Minted development token", slog.String("user_id", userID))
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "dev-user", "token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (defaults to JWT_EXPIRY_DURATION)")
	return cmd
}
