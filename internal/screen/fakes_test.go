package screen

import (
	"context"
	"errors"

	"github.com/fadilmartias/sustainability-judge/internal/dto"
)

type alert struct{ title, message string }

type recordingNotifier struct {
	alerts  []alert
	confirm bool
	asked   []alert
}

func (n *recordingNotifier) Alert(title, message string) {
	n.alerts = append(n.alerts, alert{title, message})
}

func (n *recordingNotifier) Confirm(title, message string) bool {
	n.asked = append(n.asked, alert{title, message})
	return n.confirm
}

func (n *recordingNotifier) last() alert {
	if len(n.alerts) == 0 {
		return alert{}
	}
	return n.alerts[len(n.alerts)-1]
}

var errBackend = errors.New("backend down")

// fakeAPI answers from in-memory lists; fail makes every call error.
type fakeAPI struct {
	cart      []dto.FoodJudgment
	favorites []dto.FoodJudgment
	summary   dto.Summary
	judgment  dto.FoodJudgment
	fail      bool
	calls     []string
}

func (f *fakeAPI) call(name string) error {
	f.calls = append(f.calls, name)
	if f.fail {
		return errBackend
	}
	return nil
}

func (f *fakeAPI) Judge(_ context.Context, query string) (dto.FoodJudgment, error) {
	if err := f.call("judge"); err != nil {
		return dto.FoodJudgment{}, err
	}
	return f.judgment, nil
}

func (f *fakeAPI) Cart(context.Context) ([]dto.FoodJudgment, error) {
	if err := f.call("cart"); err != nil {
		return nil, err
	}
	return append([]dto.FoodJudgment{}, f.cart...), nil
}

func (f *fakeAPI) AddToCart(_ context.Context, item dto.FoodJudgment) (string, error) {
	if err := f.call("cart/add"); err != nil {
		return "", err
	}
	f.cart = append(f.cart, item)
	return "Item added to cart", nil
}

func (f *fakeAPI) RemoveFromCart(context.Context, string) (string, error) {
	return "Item removed from cart", f.call("cart/remove")
}

func (f *fakeAPI) Favorites(context.Context) ([]dto.FoodJudgment, error) {
	if err := f.call("favorites"); err != nil {
		return nil, err
	}
	return append([]dto.FoodJudgment{}, f.favorites...), nil
}

func (f *fakeAPI) AddToFavorites(_ context.Context, item dto.FoodJudgment) (string, error) {
	if err := f.call("favorites/add"); err != nil {
		return "", err
	}
	f.favorites = append(f.favorites, item)
	return "Item added to favorites", nil
}

func (f *fakeAPI) RemoveFromFavorites(context.Context, string) (string, error) {
	return "Item removed from favorites", f.call("favorites/remove")
}

func (f *fakeAPI) Summary(context.Context) (dto.Summary, error) {
	if err := f.call("summary"); err != nil {
		return dto.Summary{}, err
	}
	return f.summary, nil
}

func judgment(id, name string, score float64, rating string) dto.FoodJudgment {
	return dto.FoodJudgment{
		FoodID: id, FoodName: name, OverallScore: score, OverallRating: rating,
		RatingEmoji: dto.EmojiForRating(rating),
	}
}
