package examnum

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/disgo/webhook"
)

// NotifyComplete posts a run summary to the configured Discord webhook. It is
// a no-op when notifications are disabled.
func NotifyComplete(ctx context.Context, cfg NotificationsConfig, results []BatchResult, rejections uint64, elapsed time.Duration) error {
	if !cfg.Enabled {
		return nil
	}

	client, err := webhook.NewWithURL(cfg.WebhookURL)
	if err != nil {
		return fmt.Errorf("failed to create webhook client: %w", err)
	}
	defer client.Close(ctx)

	if _, err = client.CreateMessage(discord.WebhookMessageCreate{
		Content: runSummary(results, rejections, elapsed),
	}, rest.CreateWebhookMessageParams{}, rest.WithCtx(ctx)); err != nil {
		return fmt.Errorf("failed to send webhook message: %w", err)
	}

	return nil
}

func runSummary(results []BatchResult, rejections uint64, elapsed time.Duration) string {
	var sb strings.Builder
	var total int
	sb.WriteString("Finished generating exam numbers:\n")
	for _, result := range results {
		prefix := result.Batch.Prefix
		if prefix == "" {
			prefix = "(none)"
		}
		sb.WriteString(fmt.Sprintf("- prefix %s: %d codes\n", prefix, len(result.Codes)))
		total += len(result.Codes)
	}
	sb.WriteString(fmt.Sprintf("%d codes total, %d candidates rejected, took %s", total, rejections, elapsed.Round(time.Millisecond)))
	return sb.String()
}
