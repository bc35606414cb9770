// Command useradd registers an account from the terminal. It goes through
// the same validation and hashing as the web registration form, which makes
// it a convenient way to bootstrap the site owner's account.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/ozyalhan/ozyblog/internal/server/auth"
	"github.com/ozyalhan/ozyblog/internal/server/config"
	"github.com/ozyalhan/ozyblog/internal/server/shared/db"
	"github.com/ozyalhan/ozyblog/internal/server/users"
)

func main() {

	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	rm, err := db.NewPostgresRepositoryManager(cfg.Database.DSN)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	defer rm.Close()

	hasher := auth.NewPasswordHasher(cfg.Security.BcryptCost)
	svc := users.NewService(rm.Users(), hasher, cfg.Session.Secret, cfg.Session.TTL)

	reader := bufio.NewReader(os.Stdin)

	fullName, err := readLine(reader, "Full name: ")
	if err != nil {
		log.Fatalf("read error: %v", err)
	}
	username, err := readLine(reader, "Username: ")
	if err != nil {
		log.Fatalf("read error: %v", err)
	}
	email, err := readLine(reader, "Email: ")
	if err != nil {
		log.Fatalf("read error: %v", err)
	}

	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		log.Fatalf("read error: %v", err)
	}

	id, err := svc.Register(context.Background(), fullName, username, email, string(password))
	if err != nil {
		log.Fatalf("register error: %v", err)
	}

	fmt.Printf("user %s created (id %d)\n", username, id)
}

func readLine(reader *bufio.Reader, prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
