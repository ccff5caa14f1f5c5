// Command login walks the Fyers OAuth flow: it prints the authorization
// URL, exchanges the pasted auth code for an access token and verifies the
// token with a funds call. Export the printed token as FYERS_ACCESS_TOKEN.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"breakout-scanner/internal/broker/fyers"
)

func main() {
	_ = godotenv.Load()

	clientID := os.Getenv("FYERS_CLIENT_ID")
	clientSecret := os.Getenv("FYERS_CLIENT_SECRET")
	redirectURI := os.Getenv("FYERS_REDIRECT_URI")
	if clientID == "" || clientSecret == "" || redirectURI == "" {
		log.Fatal("FYERS_CLIENT_ID, FYERS_CLIENT_SECRET and FYERS_REDIRECT_URI must be set")
	}

	fmt.Println("Open the following URL, log in and copy the auth_code from the redirect:")
	fmt.Println(fyers.AuthURL("", clientID, redirectURI, "scanner"))
	fmt.Print("auth_code: ")

	reader := bufio.NewReader(os.Stdin)
	code, err := reader.ReadString('\n')
	if err != nil {
		log.Fatal(err)
	}
	code = strings.TrimSpace(code)
	if code == "" {
		log.Fatal("empty auth code")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := fyers.NewClient(fyers.Params{ClientID: clientID})
	token, err := client.ValidateAuthCode(ctx, clientSecret, code)
	if err != nil {
		log.Fatal(err)
	}

	// Verify the token actually works before handing it over.
	authed := fyers.NewClient(fyers.Params{ClientID: clientID, AccessToken: token})
	if funds, err := authed.EquityFunds(ctx); err == nil {
		fmt.Printf("Available equity funds: %.2f\n", funds)
	}

	fmt.Println("FYERS_ACCESS_TOKEN=" + token)
}
