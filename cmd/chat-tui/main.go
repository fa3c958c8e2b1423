package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/jroimartin/gocui"
	"github.com/omochice/ws-chat-client/internal/chat"
	"github.com/omochice/ws-chat-client/internal/client"
	"github.com/omochice/ws-chat-client/internal/client/ws"
	"github.com/omochice/ws-chat-client/pkg/protocol"
)

func main() {
	serverAddr := flag.String("server", "localhost:5000", "Server address (host:port)")
	username := flag.String("username", "", "Username for chat")
	room := flag.String("room", "", "Room to create and join instead of the Global room")
	secure := flag.Bool("secure", false, "Use wss instead of ws")
	transport := flag.String("transport", "gorilla", "WebSocket transport: gorilla, nhooyr, or gobwas")
	flag.Parse()

	if *username == "" {
		log.Fatal("Username is required. Use -username flag")
	}

	var opts []client.Option
	switch *transport {
	case "gorilla":
		// Default dialer.
	case "nhooyr":
		opts = append(opts, client.WithDialer(ws.Dial))
	case "gobwas":
		opts = append(opts, client.WithDialer(client.DialRaw))
	default:
		log.Fatalf("Unknown transport %q. Use gorilla, nhooyr, or gobwas", *transport)
	}

	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Fatalf("Failed to initialize UI: %v", err)
	}
	defer g.Close()

	ui := NewChatUI(g, *username)
	g.SetManagerFunc(ui.layout)

	c := client.New(serverURL(*serverAddr, *room, *secure), *username, opts...)
	engine := chat.NewEngine(*username, c, ui, ui)

	if err := c.Connect(context.Background()); err != nil {
		g.Close()
		log.Fatalf("Failed to connect to server: %v", err)
	}
	defer c.Disconnect()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go engine.Run(c.Events())
	go engine.RunTypingLoop(ctx)

	if err := keybindings(g, ui, engine); err != nil {
		g.Close()
		log.Fatalf("Failed to bind keys: %v", err)
	}

	ui.setStatus(fmt.Sprintf("Connected to %s as %s | /help for commands | Ctrl-C to quit", *serverAddr, *username))

	if err := g.MainLoop(); err != nil && err != gocui.ErrQuit {
		g.Close()
		log.Fatalf("UI loop: %v", err)
	}
}

// serverURL builds the WebSocket endpoint. A non-empty room selects the
// per-room endpoint, which creates the room server-side on first connect.
func serverURL(addr, room string, secure bool) string {
	scheme := "ws"
	if secure {
		scheme = "wss"
	}
	if room == "" || room == protocol.GlobalRoom {
		return fmt.Sprintf("%s://%s/ws", scheme, addr)
	}
	return fmt.Sprintf("%s://%s/ws/%s", scheme, addr, room)
}

func keybindings(g *gocui.Gui, ui *ChatUI, engine *chat.Engine) error {
	quit := func(g *gocui.Gui, v *gocui.View) error {
		return gocui.ErrQuit
	}
	if err := g.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, quit); err != nil {
		return err
	}

	return g.SetKeybinding(inputView, gocui.KeyEnter, gocui.ModNone, func(g *gocui.Gui, v *gocui.View) error {
		text := strings.TrimSpace(v.Buffer())
		v.Clear()
		if err := v.SetCursor(0, 0); err != nil {
			return err
		}
		if text == "" {
			return nil
		}

		if err := engine.Activity(); err != nil {
			ui.setStatus(fmt.Sprintf("typing indicator: %v", err))
		}

		if strings.HasPrefix(text, "/") {
			return runCommand(ui, engine, text)
		}

		if err := engine.SendChatMessage(text); err != nil {
			ui.setStatus(fmt.Sprintf("send failed: %v", err))
		}
		return nil
	})
}

// runCommand executes a /-prefixed input line.
func runCommand(ui *ChatUI, engine *chat.Engine, text string) error {
	cmd, arg, _ := strings.Cut(text, " ")
	arg = strings.TrimSpace(arg)

	var err error
	switch cmd {
	case "/quit", "/exit":
		return gocui.ErrQuit
	case "/create":
		err = engine.CreateRoom(arg)
	case "/switch":
		err = engine.SwitchRoom(arg)
	case "/clear":
		err = engine.ClearRoomChat()
	case "/help":
		ui.setStatus("Commands: /create <name> /switch <name> /clear /quit")
	default:
		ui.setStatus(fmt.Sprintf("Unknown command %s. Try /help", cmd))
	}
	if err != nil {
		ui.setStatus(fmt.Sprintf("%s: %v", cmd, err))
	}
	return nil
}
