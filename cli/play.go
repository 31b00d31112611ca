package cli

import (
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/dugodofficials-cpu/customer-app-sub000/config"
	"github.com/dugodofficials-cpu/customer-app-sub000/media"
	"github.com/dugodofficials-cpu/customer-app-sub000/models"
	"github.com/dugodofficials-cpu/customer-app-sub000/player"
)

var playProductID string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Resolve a signed playback URL and start the player",
	Long: `Resolve a playback URL for a purchased digital product — cached URLs
are reused until they expire — and hand it to the singleton player.`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&playProductID, "product", "", "digital product id to play")
	_ = playCmd.MarkFlagRequired("product")
	rootCmd.AddCommand(playCmd)
}

// consoleElement is the terminal's audio element: it can't make sound, so
// it logs what the real element would do.
type consoleElement struct{}

func (consoleElement) Load(src string) { log.Println("🎵 Loading", src) }
func (consoleElement) Play() error     { log.Println("▶️  Playing"); return nil }
func (consoleElement) Pause()          { log.Println("⏸  Paused") }
func (consoleElement) Seek(s float64)  { log.Printf("⏩ Seek to %.1fs", s) }
func (consoleElement) Close() error    { return nil }

func (consoleElement) OnTimeUpdate(func(position, duration float64)) {}
func (consoleElement) OnEnded(func())                                {}

func runPlay(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	client, _, err := newClient(cfg)
	if err != nil {
		return err
	}

	var store media.Store = media.NewMemoryStore()
	if cfg.RedisAddr != "" {
		store = media.NewRedisStore(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}), "media")
	}
	resolver := media.NewResolver(store, client)

	url, err := resolver.PlaybackURL(ctx, playProductID)
	if err != nil {
		return err
	}

	p := player.New(consoleElement{})
	defer p.Close()

	if err := p.PlayTrack(models.Track{ID: playProductID, AudioURL: url}); err != nil {
		return err
	}
	current, _ := p.Current()
	log.Printf("✅ Now playing %s (one track at a time, always)", current.ID)
	return nil
}
