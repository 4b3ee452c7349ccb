package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/pulseboard-dev/pulseboard/pkg/sdk"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		return
	}

	client := sdk.FromEnv()

	command := strings.ToUpper(os.Args[1])
	args := os.Args[2:]

	switch command {
	case "USERS":
		users, err := client.Users()
		if err != nil {
			log.Fatal(err)
		}
		printJSON(users)

	case "GET":
		if len(args) < 1 {
			log.Fatal("Usage: pulseboard GET <id>")
		}
		user, err := client.User(parseID(args[0]))
		if err != nil {
			log.Fatal(err)
		}
		printJSON(user)

	case "CREATE":
		if len(args) < 3 {
			log.Fatal("Usage: pulseboard CREATE <username> <email> <password> [status]")
		}
		u := sdk.NewUser{Username: args[0], Email: args[1], Password: args[2]}
		if len(args) > 3 {
			u.Status = args[3]
		}
		created, err := client.CreateUser(u)
		if err != nil {
			log.Fatal(err)
		}
		printJSON(created)

	case "UPDATE":
		if len(args) < 2 {
			log.Fatal(`Usage: pulseboard UPDATE <id> <json-patch> (e.g. '{"status":"inactive"}')`)
		}
		var patch sdk.UserPatch
		if err := json.Unmarshal([]byte(args[1]), &patch); err != nil {
			log.Fatalf("invalid patch: %v", err)
		}
		updated, err := client.UpdateUser(parseID(args[0]), patch)
		if err != nil {
			log.Fatal(err)
		}
		printJSON(updated)

	case "DEL":
		if len(args) < 1 {
			log.Fatal("Usage: pulseboard DEL <id>")
		}
		if err := client.DeleteUser(parseID(args[0])); err != nil {
			log.Fatal(err)
		}
		fmt.Println("OK")

	case "LOGIN":
		if len(args) < 2 {
			log.Fatal("Usage: pulseboard LOGIN <username> <password>")
		}
		user, err := client.Login(args[0], args[1])
		if err != nil {
			log.Fatal(err)
		}
		printJSON(user)

	case "SUMMARY":
		summary, err := client.Summary()
		if err != nil {
			log.Fatal(err)
		}
		printJSON(summary)

	case "USAGE":
		timeframe := "daily"
		if len(args) > 0 {
			timeframe = args[0]
		}
		series, err := client.Usage(timeframe)
		if err != nil {
			log.Fatal(err)
		}
		printJSON(series)

	case "ACTIVITY":
		records, err := client.UserActivity()
		if err != nil {
			log.Fatal(err)
		}
		printJSON(records)

	case "ANOMALIES":
		anomalies, err := client.Anomalies()
		if err != nil {
			log.Fatal(err)
		}
		printJSON(anomalies)

	case "TOP_PAGES":
		pages, err := client.TopPages()
		if err != nil {
			log.Fatal(err)
		}
		printJSON(pages)

	case "STATUS":
		status, err := client.SystemStatus()
		if err != nil {
			log.Fatal(err)
		}
		printJSON(status)

	case "PING":
		if err := client.Ping(); err != nil {
			log.Fatal(err)
		}
		fmt.Println("PONG")

	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
	}
}

func printJSON(v any) {
	bytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Println(v)
		return
	}
	fmt.Println(string(bytes))
}

func parseID(s string) int {
	id, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid id %q", s)
	}
	return id
}

func printUsage() {
	fmt.Println("Pulseboard CLI - Interface for the Pulseboard server")
	fmt.Println("\nUsage:")
	fmt.Println("  pulseboard USERS")
	fmt.Println("  pulseboard GET <id>")
	fmt.Println("  pulseboard CREATE <username> <email> <password> [status]")
	fmt.Println("  pulseboard UPDATE <id> <json-patch>")
	fmt.Println("  pulseboard DEL <id>")
	fmt.Println("  pulseboard LOGIN <username> <password>")
	fmt.Println("  pulseboard SUMMARY")
	fmt.Println("  pulseboard USAGE [daily|monthly]")
	fmt.Println("  pulseboard ACTIVITY")
	fmt.Println("  pulseboard ANOMALIES")
	fmt.Println("  pulseboard TOP_PAGES")
	fmt.Println("  pulseboard STATUS")
	fmt.Println("  pulseboard PING")
	fmt.Println("\nEnvironment Variables:")
	fmt.Println("  PULSE_API_ADDR    Address of the server (default: http://localhost:3001)")
}
