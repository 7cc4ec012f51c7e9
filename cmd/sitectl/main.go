package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sort"
	"time"

	"cavaltron-backend/pkg/contact"
	"cavaltron-backend/pkg/siteclient"
	"cavaltron-backend/pkg/validation"

	"github.com/spf13/cobra"
)

type options struct {
	apiURL  string
	timeout time.Duration
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "sitectl",
		Short:         "Command line client for the CAVALTRON site API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.apiURL, "api-url", envOr("SITE_API_URL", "http://localhost:8080"), "API base URL")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 15*time.Second, "request timeout")

	rootCmd.AddCommand(newSubmitCmd(opts))
	rootCmd.AddCommand(newContentCmd(opts))
	return rootCmd
}

func newSubmitCmd(opts *options) *cobra.Command {
	var sub contact.Submission

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Send a contact form submission",
		RunE: func(cmd *cobra.Command, args []string) error {
			form := siteclient.NewContactForm(opts.client())
			form.OnStatusChange = func(s siteclient.Status) {
				fmt.Fprintf(cmd.ErrOrStderr(), "status: %s\n", s)
			}

			status, err := form.Submit(cmd.Context(), sub)
			var fe validation.FieldErrors
			switch {
			case errors.As(err, &fe):
				fields := make([]string, 0, len(fe))
				for f := range fe {
					fields = append(fields, f)
				}
				sort.Strings(fields)
				for _, f := range fields {
					fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %s\n", f, fe[f])
				}
				return fmt.Errorf("submission is %s", status)
			case err != nil:
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "sent: %s\n", form.Receipt().ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&sub.Name, "name", "", "sender name")
	cmd.Flags().StringVar(&sub.Email, "email", "", "sender email")
	cmd.Flags().StringVar(&sub.Phone, "phone", "", "sender phone")
	cmd.Flags().StringVar(&sub.Message, "message", "", "message body")
	return cmd
}

func newContentCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Print site content as JSON",
	}

	printJSON := func(cmd *cobra.Command, v interface{}, err error) error {
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "page",
			Short: "The whole page",
			RunE: func(cmd *cobra.Command, args []string) error {
				v, err := opts.client().GetPage(cmd.Context())
				return printJSON(cmd, v, err)
			},
		},
		&cobra.Command{
			Use:   "section [name]",
			Short: "One section (hero, about)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				v, err := opts.client().GetSection(cmd.Context(), args[0])
				return printJSON(cmd, v, err)
			},
		},
		&cobra.Command{
			Use:   "skills",
			Short: "Skills in display order",
			RunE: func(cmd *cobra.Command, args []string) error {
				v, err := opts.client().GetSkills(cmd.Context())
				return printJSON(cmd, v, err)
			},
		},
		&cobra.Command{
			Use:   "projects",
			Short: "Projects in display order",
			RunE: func(cmd *cobra.Command, args []string) error {
				v, err := opts.client().GetProjects(cmd.Context())
				return printJSON(cmd, v, err)
			},
		},
		&cobra.Command{
			Use:   "contact-info",
			Short: "Contact channels",
			RunE: func(cmd *cobra.Command, args []string) error {
				v, err := opts.client().GetContactInfo(cmd.Context())
				return printJSON(cmd, v, err)
			},
		},
	)
	return cmd
}

func (o *options) client() *siteclient.Client {
	return siteclient.NewClient(siteclient.Config{
		BaseURL:    o.apiURL,
		HTTPClient: &http.Client{Timeout: o.timeout},
	})
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
