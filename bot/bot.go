package bot

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/spf13/viper"

	"fyi-bot/command"
	"fyi-bot/config"
	"fyi-bot/database"
	"fyi-bot/relay"
	"fyi-bot/utils"
)

// Bot encapsulates the bot's state.
type Bot struct {
	Session *discordgo.Session
	Store   *database.Store
	Engine  *relay.Engine
}

// NewBot creates and initializes a new Bot instance.
func NewBot() (*Bot, error) {
	config.LoadConfig()
	token := viper.GetString("BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("no bot token provided")
	}

	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions |
		discordgo.IntentsGuildMembers |
		discordgo.IntentMessageContent

	db, err := database.InitDB(viper.GetString("database.path"))
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}
	store := database.NewStore(db)

	return &Bot{
		Session: dg,
		Store:   store,
		Engine:  relay.NewEngine(store, relay.NewSessionTransport(dg)),
	}, nil
}

// Start opens the bot's session, registers handlers and slash commands, and
// starts the sweep scheduler.
func (b *Bot) Start(registerHandlers func(*Bot)) error {
	registerHandlers(b)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	utils.InitLogger(b.Session)

	// Register slash commands
	for _, cmd := range command.AllCommands {
		if _, err := b.Session.ApplicationCommandCreate(b.Session.State.User.ID, "", cmd.Definition()); err != nil {
			log.Printf("Cannot create '%v' command: %v", cmd.Definition().Name, err)
		}
	}

	startScheduler(b.Store)

	fmt.Println("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop gracefully closes the bot's session and database.
func (b *Bot) Stop() {
	stopScheduler()
	if b.Session != nil {
		b.Session.Close()
	}
	if b.Store != nil {
		b.Store.Close()
	}
	fmt.Println("Bot stopped gracefully.")
}

// Run is the main entry point for the bot application.
func Run(registerHandlers func(*Bot)) {
	bot, err := NewBot()
	if err != nil {
		log.Fatalf("Error initializing bot: %v", err)
	}

	if err := bot.Start(registerHandlers); err != nil {
		log.Fatalf("Error starting bot: %v", err)
	}

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	bot.Stop()
}
