package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const (
	colorGreen  = 0x2ECC71 // score 90+
	colorYellow = 0xF1C40F // score 70-89
	colorOrange = 0xE67E22 // score below 70
	colorRed    = 0xE74C3C // expiry notices
)

// DiscordNotifier implements Notifier via Discord webhook.
type DiscordNotifier struct {
	webhookURL string
	client     *http.Client
	limiter    *RateLimiter
}

// NewDiscordNotifier creates a new DiscordNotifier.
func NewDiscordNotifier(webhookURL string, opts ...DiscordOption) *DiscordNotifier {
	d := &DiscordNotifier{
		webhookURL: webhookURL,
		client:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DiscordOption configures a DiscordNotifier.
type DiscordOption func(*DiscordNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) DiscordOption {
	return func(d *DiscordNotifier) {
		d.client = c
	}
}

// WithRateLimiter throttles webhook posts through the given limiter.
func WithRateLimiter(rl *RateLimiter) DiscordOption {
	return func(d *DiscordNotifier) {
		d.limiter = rl
	}
}

// discordWebhookPayload is the Discord webhook JSON structure.
type discordWebhookPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string              `json:"title"`
	Color       int                 `json:"color"`
	Description string              `json:"description,omitempty"`
	Fields      []discordEmbedField `json:"fields,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// SendMatchAlert sends a single match alert as a Discord embed.
func (d *DiscordNotifier) SendMatchAlert(ctx context.Context, alert *MatchAlertPayload) error {
	payload := discordWebhookPayload{
		Embeds: []discordEmbed{buildMatchEmbed(alert)},
	}
	return d.post(ctx, payload)
}

// SendBatchMatchAlert sends multiple match alerts as a single Discord message.
func (d *DiscordNotifier) SendBatchMatchAlert(
	ctx context.Context,
	alerts []MatchAlertPayload,
	buyerID string,
) error {
	embeds := make([]discordEmbed, 0, len(alerts))

	// Discord allows max 10 embeds per message.
	limit := min(len(alerts), 10)

	for i := range limit {
		embeds = append(embeds, buildMatchEmbed(&alerts[i]))
	}

	if len(alerts) > 10 {
		embeds = append(embeds, discordEmbed{
			Title:       fmt.Sprintf("... and %d more matches for buyer %s", len(alerts)-10, buyerID),
			Color:       colorYellow,
			Description: "Check the dashboard for the full list.",
		})
	}

	payload := discordWebhookPayload{Embeds: embeds}
	return d.post(ctx, payload)
}

// SendExpiryNotice sends a timer expiry notification as a Discord embed.
func (d *DiscordNotifier) SendExpiryNotice(ctx context.Context, notice *ExpiryPayload) error {
	embed := discordEmbed{
		Title: fmt.Sprintf("Reservation Expired: %s", notice.ListingTitle),
		Color: colorRed,
		Fields: []discordEmbedField{
			{Name: "Deal", Value: notice.DealID, Inline: true},
			{Name: "Buyer", Value: notice.BuyerID, Inline: true},
			{Name: "Stage", Value: notice.Stage, Inline: true},
			{Name: "Expired", Value: notice.ExpiredAt, Inline: true},
		},
		Description: "The listing has been released back to the marketplace.",
	}
	payload := discordWebhookPayload{Embeds: []discordEmbed{embed}}
	return d.post(ctx, payload)
}

// SendRunningLowWarning warns that a deal's reservation window is almost
// consumed.
func (d *DiscordNotifier) SendRunningLowWarning(
	ctx context.Context,
	warning *RunningLowPayload,
) error {
	embed := discordEmbed{
		Title: fmt.Sprintf("Reservation Running Low: %s", warning.ListingTitle),
		Color: colorOrange,
		Fields: []discordEmbedField{
			{Name: "Deal", Value: warning.DealID, Inline: true},
			{Name: "Buyer", Value: warning.BuyerID, Inline: true},
			{Name: "Stage", Value: warning.Stage, Inline: true},
			{Name: "Deadline", Value: warning.ReservedUntil, Inline: true},
			{Name: "Days Left", Value: fmt.Sprintf("%d", warning.DaysRemaining), Inline: true},
		},
		Description: "The deal will be released when the deadline passes.",
	}
	payload := discordWebhookPayload{Embeds: []discordEmbed{embed}}
	return d.post(ctx, payload)
}

func buildMatchEmbed(alert *MatchAlertPayload) discordEmbed {
	return discordEmbed{
		Title: fmt.Sprintf("Match Alert: %s", alert.ListingTitle),
		Color: scoreColor(alert.Score),
		Fields: []discordEmbedField{
			{Name: "Score", Value: fmt.Sprintf("%d/100", alert.Score), Inline: true},
			{Name: "Sector", Value: alert.Sector, Inline: true},
			{Name: "Department", Value: alert.Department, Inline: true},
			{Name: "Revenue", Value: alert.Revenue, Inline: true},
			{Name: "Employees", Value: alert.Employees, Inline: true},
			{Name: "Asking Price", Value: alert.AskingPrice, Inline: true},
		},
	}
}

func scoreColor(score int) int {
	switch {
	case score >= 90:
		return colorGreen
	case score >= 70:
		return colorYellow
	default:
		return colorOrange
	}
}

func (d *DiscordNotifier) post(ctx context.Context, payload discordWebhookPayload) error {
	if d.limiter != nil {
		if err := d.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		d.webhookURL,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending discord webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("discord rate limited (429)")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("discord returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("discord returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}
