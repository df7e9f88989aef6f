package probe

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/orris-inc/toolbox/internal/infrastructure/prober"
	"github.com/orris-inc/toolbox/internal/shared/utils"
)

var (
	timeout   time.Duration
	userAgent string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probe <url>",
		Short: "Check a URL once",
		Long:  `Issue the same HEAD probe the uptime worker runs and print the outcome.`,
		Args:  cobra.ExactArgs(1),
		RunE:  run,
	}

	cmd.Flags().DurationVarP(&timeout, "timeout", "t", 10*time.Second, "Probe timeout")
	cmd.Flags().StringVar(&userAgent, "user-agent", "ToolboxUptimeMonitor/1.0", "User-Agent header")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	target := args[0]
	if err := utils.ValidateHTTPURL(target, "url"); err != nil {
		return err
	}

	p := prober.NewHTTPProber(prober.Config{Timeout: timeout, UserAgent: userAgent})
	outcome := p.Probe(cmd.Context(), target)

	out := cmd.OutOrStdout()
	state := "DOWN"
	if outcome.IsUp {
		state = "UP"
	}
	fmt.Fprintf(out, "%s %s latency=%dms", state, target, outcome.LatencyMs)
	if outcome.StatusCode != nil {
		fmt.Fprintf(out, " status=%d", *outcome.StatusCode)
	}
	if outcome.Error != nil {
		fmt.Fprintf(out, " error=%q", *outcome.Error)
	}
	fmt.Fprintln(out)

	if !outcome.IsUp {
		return fmt.Errorf("%s is down", target)
	}
	return nil
}
