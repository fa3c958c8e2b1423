package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

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

	c := client.New(serverURL(*serverAddr, *room, *secure), *username, opts...)
	ui := &terminalUI{}
	engine := chat.NewEngine(*username, c, ui, ui)

	if err := c.Connect(context.Background()); err != nil {
		log.Fatalf("Failed to connect to server: %v", err)
	}
	defer c.Disconnect()

	log.Printf("Connected to %s as %s", *serverAddr, *username)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go engine.Run(c.Events())
	go engine.RunTypingLoop(ctx)

	fmt.Println("Type your messages, or /help for commands:")
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		if err := engine.Activity(); err != nil {
			log.Printf("Failed to send typing indicator: %v", err)
		}

		if strings.HasPrefix(text, "/") {
			if quit := runCommand(engine, text); quit {
				break
			}
			continue
		}

		if err := engine.SendChatMessage(text); err != nil {
			log.Printf("Failed to send message: %v", err)
		}
	}

	if err := scanner.Err(); err != nil {
		log.Printf("Error reading input: %v", err)
	}

	log.Println("Disconnected from server")
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

// runCommand executes a /-prefixed input line. It reports whether the
// client should quit.
func runCommand(engine *chat.Engine, text string) bool {
	cmd, arg, _ := strings.Cut(text, " ")
	arg = strings.TrimSpace(arg)

	var err error
	switch cmd {
	case "/quit", "/exit":
		return true
	case "/rooms":
		fmt.Printf("Current room: %s\n", engine.CurrentRoom())
		for _, name := range engine.Rooms() {
			fmt.Printf("  %s\n", name)
		}
	case "/users":
		fmt.Printf("Online users (%d):\n", len(engine.OnlineUsers()))
		for _, name := range engine.OnlineUsers() {
			fmt.Printf("  %s\n", name)
		}
	case "/create":
		err = engine.CreateRoom(arg)
	case "/switch":
		err = engine.SwitchRoom(arg)
	case "/clear":
		err = engine.ClearRoomChat()
	case "/help":
		fmt.Println("Commands: /rooms /users /create <name> /switch <name> /clear /quit")
	default:
		fmt.Printf("Unknown command %s. Try /help\n", cmd)
	}
	if err != nil {
		log.Printf("%s: %v", cmd, err)
	}
	return false
}
