// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// setupCommand handles setup operations for database and configuration.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "database",
				Usage: "Initialize database and run migrations",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupDatabase,
			},
		},
	}
}

// contactsCommand handles address-book analysis and the local profile cache.
func contactsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "contacts",
		Aliases: []string{"c"},
		Usage:   "Analyze contacts and browse cached mood profiles",
		Commands: []*cli.Command{
			{
				Name:  "analyze",
				Usage: "Look up emotion profiles for every contact in a JSON address book",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "file",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output resulting profiles as JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.ContactsAnalyze,
			},
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List cached contact mood profiles",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.ContactsList,
			},
			{
				Name:  "report",
				Usage: "Export cached profiles as a mood report",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Report format: csv, markdown, txt, or json",
						Value:   "markdown",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path",
					},
				},
				Action: r.ContactsReport,
			},
		},
	}
}

// followCommand manages the local following set.
func followCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "follow",
		Usage: "Manage the contacts you follow",
		Commands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Follow a contact by name and phone number",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "name"},
					&cli.StringArg{Name: "phone"},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "emotion",
						Aliases: []string{"e"},
						Usage:   "Initial emotion code name (e.g. grinning-face)",
					},
				},
				Action: r.FollowAdd,
			},
			{
				Name:    "remove",
				Aliases: []string{"rm"},
				Usage:   "Unfollow a contact by phone number",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "phone"},
				},
				Action: r.FollowRemove,
			},
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List followed contacts",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.FollowList,
			},
		},
	}
}

// syncCommand reconciles the local following set with the backend.
func syncCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "sync",
		Usage: "Reconcile the following list with the backend",
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "Run a two-way following reconciliation",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "force",
						Usage: "Bypass the sync cooldown",
					},
				},
				Action: r.SyncRun,
			},
			{
				Name:   "status",
				Usage:  "Show last sync time and local following count",
				Action: r.SyncStatus,
			},
		},
	}
}

// emojiCommand resolves emotion codes to names and glyphs.
func emojiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "emoji",
		Usage: "Emotion code table operations",
		Commands: []*cli.Command{
			{
				Name:  "lookup",
				Usage: "Resolve an emotion code id or name",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "query"},
				},
				Action: r.EmojiLookup,
			},
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "Print the full emotion code table",
				Action:  r.EmojiList,
			},
		},
	}
}

// celebritiesCommand shows the cached celebrity mood feed.
func celebritiesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "celebrities",
		Aliases: []string{"celebs"},
		Usage:   "Show the celebrity mood feed",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "refresh",
				Usage: "Refetch the feed even if the cache is fresh",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
		},
		Action: r.Celebrities,
	}
}

// spotifyCommand handles the optional Spotify listening signal.
func spotifyCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "spotify",
		Aliases: []string{"spot"},
		Usage:   "Spotify listening signal operations",
		Commands: []*cli.Command{
			{
				Name:  "auth",
				Usage: "Authenticate with Spotify using OAuth2",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SpotifyAuth,
			},
			{
				Name:   "now",
				Usage:  "Show the currently playing track",
				Action: r.SpotifyNow,
			},
			{
				Name:   "profile",
				Usage:  "Show the authenticated Spotify profile",
				Action: r.SpotifyProfile,
			},
			{
				Name:  "top",
				Usage: "Show top artists",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of artists to return",
						Value: 10,
					},
				},
				Action: r.SpotifyTop,
			},
		},
	}
}

// apiCommand handles direct backend API calls for debugging.
func apiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "api",
		Usage: "Direct API calls to the mood backend",
		Commands: []*cli.Command{
			{
				Name:  "get",
				Usage: "Direct GET to the backend, prints raw JSON",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "path",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
						Value: true,
					},
				},
				Action: r.APIGet,
			},
			{
				Name:  "post",
				Usage: "Direct POST with JSON body",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "path",
					},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "data",
						Aliases:  []string{"d"},
						Usage:    "JSON body to send",
						Required: true,
					},
				},
				Action: r.APIPost,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for interactive mood browsing.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch interactive TUI for browsing contact moods",
		Action:  r.TUI,
	}
}
