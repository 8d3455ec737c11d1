package telegram

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gotd/td/telegram/auth"
	"github.com/gotd/td/tg"
)

// terminalAuth authorizes a user session. Phone and password come from the
// configuration; the login code is read from stdin when Telegram sends one.
type terminalAuth struct {
	phone    string
	password string
}

func (a terminalAuth) Phone(_ context.Context) (string, error) {
	if a.phone == "" {
		return "", errors.New("no phone number configured")
	}
	return a.phone, nil
}

func (a terminalAuth) Password(_ context.Context) (string, error) {
	if a.password == "" {
		return "", errors.New("2FA password requested but not configured")
	}
	return a.password, nil
}

func (a terminalAuth) Code(_ context.Context, _ *tg.AuthSentCode) (string, error) {
	fmt.Fprint(os.Stderr, "Enter login code: ")
	code, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read login code: %w", err)
	}
	return strings.TrimSpace(code), nil
}

func (a terminalAuth) AcceptTermsOfService(_ context.Context, _ tg.HelpTermsOfService) error {
	return nil
}

func (a terminalAuth) SignUp(_ context.Context) (auth.UserInfo, error) {
	return auth.UserInfo{}, errors.New("sign-up of new accounts is not supported")
}
