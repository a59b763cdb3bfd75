package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/fadilmartias/sustainability-judge/internal/client"
	"github.com/fadilmartias/sustainability-judge/internal/config"
	"github.com/fadilmartias/sustainability-judge/internal/dto"
	"github.com/fadilmartias/sustainability-judge/internal/screen"
	"golang.org/x/sync/errgroup"
)

const usage = `Usage: sustain [-server URL] [-user ID] [-yes] <command> [args]

Commands:
  chat                         interactive judge (/add adds the last judgment to the cart, /quit exits)
  judge [-add] <query>         evaluate a food item
  cart [-expand]               show the cart
  cart remove <food_id>        remove an item from the cart
  cart favorite <food_id>      add a cart item to favorites
  cart clear                   empty the cart
  favorites [-expand]          show favorites
  favorites remove <food_id>   remove a favorite (asks first)
  favorites cart <food_id>     add a favorite to the cart
  summary                      cart sustainability summary
  history [-page N]            past evaluations, newest first
  stats                        counts and average cart score
  dashboard                    cart, favorites and summary at once
  health                       check the backend
`

var errUsage = errors.New("invalid usage")

type app struct {
	api    *client.Client
	notify *terminalNotifier
	in     *bufio.Reader
	out    io.Writer
}

// run executes one CLI invocation and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg := *config.LoadClientConfig()

	fs := flag.NewFlagSet("sustain", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }
	server := fs.String("server", "", "backend base URL (overrides SUSTAIN_API_URL)")
	user := fs.String("user", "", "user id (overrides SUSTAIN_USER_ID)")
	yes := fs.Bool("yes", false, "answer yes to confirmations")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *server != "" {
		cfg.APIBaseURL = strings.TrimRight(*server, "/")
	}
	if *user != "" {
		cfg.UserID = *user
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	in := bufio.NewReader(stdin)
	a := &app{
		api:    client.New(&cfg),
		notify: newTerminalNotifier(in, stderr, *yes),
		in:     in,
		out:    stdout,
	}

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	var err error
	switch cmd {
	case "chat":
		err = a.chat(ctx)
	case "judge":
		err = a.judge(ctx, rest)
	case "cart":
		err = a.cart(ctx, rest)
	case "favorites":
		err = a.favorites(ctx, rest)
	case "summary":
		err = a.summary(ctx)
	case "history":
		err = a.history(ctx, rest)
	case "stats":
		err = a.stats(ctx)
	case "dashboard":
		err = a.dashboard(ctx)
	case "health":
		err = a.health(ctx)
	default:
		fmt.Fprintf(stderr, "Unknown command %q\n\n", cmd)
		err = errUsage
	}

	switch {
	case errors.Is(err, errUsage):
		fmt.Fprint(stderr, usage)
		return 2
	case err != nil:
		return 1
	}
	return 0
}

func (a *app) chat(ctx context.Context) error {
	s := screen.NewChatScreen(a.api, a.notify)
	shown := 0
	flush := func() {
		msgs := s.Messages()
		for _, m := range msgs[shown:] {
			fmt.Fprint(a.out, screen.RenderMessage(m))
		}
		shown = len(msgs)
	}
	flush()

	for {
		fmt.Fprint(a.out, "> ")
		line, err := a.in.ReadString('\n')
		text := strings.TrimSpace(line)
		switch {
		case text == "/quit":
			return nil
		case text == "/add":
			if j, ok := s.LastJudgment(); ok {
				s.AddToCart(ctx, j)
			} else {
				a.notify.Alert("Error", "Nothing to add yet")
			}
		case text != "":
			s.Send(ctx, text)
			flush()
		}
		if err != nil {
			// EOF ends the session
			return nil
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

func (a *app) judge(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("judge", flag.ContinueOnError)
	add := fs.Bool("add", false, "add the judgment to the cart")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	query := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if query == "" {
		return errUsage
	}

	j, err := a.api.Judge(ctx, query)
	if err != nil {
		a.notify.Alert("Error", fmt.Sprintf("Failed to evaluate food: %v", err))
		return err
	}
	fmt.Fprintln(a.out, screen.FormatJudgment(j))
	fmt.Fprintln(a.out)
	fmt.Fprint(a.out, screen.RenderItem(j, true))

	if *add {
		screen.NewChatScreen(a.api, a.notify).AddToCart(ctx, j)
	}
	return nil
}

func (a *app) cart(ctx context.Context, args []string) error {
	s := screen.NewCartScreen(a.api, a.notify)

	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		switch args[0] {
		case "clear":
			if !a.notify.Confirm("Clear Cart", "Remove every item from your cart?") {
				return nil
			}
			msg, err := a.api.ClearCart(ctx)
			if err != nil {
				a.notify.Alert("Error", fmt.Sprintf("Failed to clear cart: %v", err))
				return err
			}
			a.notify.Alert("Cleared", msg)
			return nil
		case "remove", "favorite":
			if len(args) != 2 {
				return errUsage
			}
			if args[0] == "remove" {
				return s.Remove(ctx, args[1])
			}
			if err := s.Load(ctx); err != nil {
				return err
			}
			item, ok := s.Find(args[1])
			if !ok {
				a.notify.Alert("Error", fmt.Sprintf("No item %s in cart", args[1]))
				return fmt.Errorf("item %s not in cart", args[1])
			}
			return s.AddToFavorites(ctx, item)
		default:
			return errUsage
		}
	}

	fs := flag.NewFlagSet("cart", flag.ContinueOnError)
	expand := fs.Bool("expand", false, "show full breakdowns")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if err := s.Load(ctx); err != nil {
		return err
	}
	if *expand {
		s.ExpandAll()
	}
	fmt.Fprint(a.out, s.Render())
	return nil
}

func (a *app) favorites(ctx context.Context, args []string) error {
	s := screen.NewFavoritesScreen(a.api, a.notify)

	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		if len(args) != 2 || (args[0] != "remove" && args[0] != "cart") {
			return errUsage
		}
		if err := s.Load(ctx); err != nil {
			return err
		}
		item, ok := s.Find(args[1])
		if !ok {
			a.notify.Alert("Error", fmt.Sprintf("No favorite %s", args[1]))
			return fmt.Errorf("favorite %s not found", args[1])
		}
		if args[0] == "cart" {
			return s.AddToCart(ctx, item)
		}
		_, err := s.Remove(ctx, item.FoodID, item.FoodName)
		return err
	}

	fs := flag.NewFlagSet("favorites", flag.ContinueOnError)
	expand := fs.Bool("expand", false, "show full breakdowns")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if err := s.Load(ctx); err != nil {
		return err
	}
	if *expand {
		s.ExpandAll()
	}
	fmt.Fprint(a.out, s.Render())
	return nil
}

func (a *app) summary(ctx context.Context) error {
	s := screen.NewSummaryScreen(a.api, a.notify)
	if err := s.Load(ctx); err != nil {
		return err
	}
	fmt.Fprint(a.out, s.Render())
	return nil
}

func (a *app) history(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	page := fs.Int("page", 1, "page number")
	size := fs.Int("size", 0, "items per page")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	res, err := a.api.History(ctx, *page, *size)
	if err != nil {
		a.notify.Alert("Error", fmt.Sprintf("Failed to load history: %v", err))
		return err
	}
	if len(res.History) == 0 {
		fmt.Fprintln(a.out, "No evaluations yet")
		return nil
	}
	for _, j := range res.History {
		fmt.Fprint(a.out, screen.RenderItem(j, false))
	}
	if p := res.Pagination; p != nil {
		fmt.Fprintf(a.out, "\nShowing %d-%d of %d (page %d/%d)\n", p.From, p.To, p.TotalItems, p.Page, p.TotalPages)
	}
	return nil
}

func (a *app) stats(ctx context.Context) error {
	st, err := a.api.Stats(ctx)
	if err != nil {
		a.notify.Alert("Error", fmt.Sprintf("Failed to load stats: %v", err))
		return err
	}
	fmt.Fprintf(a.out, "Cart items:         %d\n", st.CartItems)
	fmt.Fprintf(a.out, "Favorite items:     %d\n", st.FavoriteItems)
	fmt.Fprintf(a.out, "Evaluations:        %d\n", st.TotalEvaluations)
	fmt.Fprintf(a.out, "Average cart score: %.1f%% %s\n", st.AverageCartScore,
		dto.EmojiForRating(dto.RatingForScore(st.AverageCartScore)))
	return nil
}

// dashboard loads the three list screens concurrently and prints whatever
// loaded, in a fixed order.
func (a *app) dashboard(ctx context.Context) error {
	cart := screen.NewCartScreen(a.api, a.notify)
	favorites := screen.NewFavoritesScreen(a.api, a.notify)
	summary := screen.NewSummaryScreen(a.api, a.notify)

	var g errgroup.Group
	g.Go(func() error { return cart.Load(ctx) })
	g.Go(func() error { return favorites.Load(ctx) })
	g.Go(func() error { return summary.Load(ctx) })
	err := g.Wait()

	for _, section := range []struct {
		title string
		body  string
	}{
		{"🛒 Cart", cart.Render()},
		{"❤️  Favorites", favorites.Render()},
		{"📊 Summary", summary.Render()},
	} {
		fmt.Fprintf(a.out, "== %s ==\n%s\n", section.title, section.body)
	}
	return err
}

func (a *app) health(ctx context.Context) error {
	h, err := a.api.Health(ctx)
	if err != nil {
		a.notify.Alert("Error", fmt.Sprintf("Backend unreachable: %v", err))
		return err
	}
	fmt.Fprintf(a.out, "%s: %s\n", h.Status, h.Message)
	return nil
}
