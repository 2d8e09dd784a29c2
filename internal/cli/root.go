package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	user, err := a.session.Current(context.Background())
	if err != nil {
		return "(guest)"
	}
	return fmt.Sprintf("(%s)", user.Email)
}

func (a *App) Root(ctx context.Context) {
	fmt.Println("Welcome to EaseShop (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
