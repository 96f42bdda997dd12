package cli

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"

	"matchmaker/internal/models"
)

var (
	checkServer  string
	checkTimeout time.Duration
)

var checkCmd = &cobra.Command{
	Use:   "check [email]",
	Short: "Check an email through a running server",
	Long: `Posts the email to the server's check-email endpoint and reports the result.
Exits non-zero when the email is not found or the server reports an error.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkServer, "server", "s", "http://localhost:3000", "server base URL")
	checkCmd.Flags().DurationVar(&checkTimeout, "timeout", 10*time.Second, "request timeout")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	email := args[0]

	client := resty.New().
		SetBaseURL(checkServer).
		SetTimeout(checkTimeout)

	var out models.LookupResponse
	resp, err := client.R().
		SetContext(cmd.Context()).
		SetBody(models.LookupRequest{Email: email}).
		SetResult(&out).
		SetError(&out).
		Post(models.CheckEmailPath)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		return printResult(cmd, email, true)
	case http.StatusNotFound:
		return printResult(cmd, email, false)
	default:
		if out.Error != "" {
			return fmt.Errorf("server returned %d: %s", resp.StatusCode(), out.Error)
		}
		return fmt.Errorf("server returned %d", resp.StatusCode())
	}
}
