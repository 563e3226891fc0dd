package cli

import (
	"bufio"
	"context"
	"log"
	"os"

	"github.com/daynu/herejpg/internal/client/api"
	"github.com/daynu/herejpg/internal/client/config"
	"github.com/daynu/herejpg/internal/client/mapview"
	"github.com/daynu/herejpg/internal/client/models"
)

// App wires the API client, the map view model and the interactive REPL.
// The viewer's identity is fetched once after login and cached until
// logout; the session credential itself lives in the client's cookie jar.
type App struct {
	config   *config.Config
	client   api.Client
	sync     *mapview.Synchronizer
	edit     *mapview.EditSession
	identity *models.Identity
	reader   *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := api.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	sync := mapview.NewSynchronizer(apiClient)

	return &App{
		config: c,
		client: apiClient,
		sync:   sync,
		edit:   mapview.NewEditSession(apiClient, sync),
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.identity != nil
}

func (a *App) Run(ctx context.Context) {
	log.Println("Welcome to herejpg CLI (type 'help' for commands)")

	if err := a.sync.Load(ctx); err != nil {
		log.Printf("could not load photos: %s", err.Error())
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) getStatus() string {
	if a.identity == nil {
		return ""
	}
	s := a.identity.Name
	if a.identity.Role != "" {
		s = s + " " + a.identity.Role
	}
	return "(" + s + ")"
}
