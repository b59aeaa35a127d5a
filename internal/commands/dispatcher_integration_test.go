package commands_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-command/dispatcher"
	"github.com/goliatone/go-command/runner"

	"github.com/goliatone/go-blogkit/internal/commands"
	synccmd "github.com/goliatone/go-blogkit/internal/commands/sync"
	"github.com/goliatone/go-blogkit/internal/notionsync"
	"github.com/goliatone/go-blogkit/pkg/interfaces"
)

type pageSource struct {
	pages []interfaces.RemotePage
}

func (s pageSource) SearchPages(context.Context) ([]interfaces.RemotePage, error) {
	return s.pages, nil
}

func (s pageSource) ListBlocks(context.Context, string) ([]interfaces.Block, error) {
	return []interfaces.Block{{Type: interfaces.BlockParagraph, RichText: []interfaces.RichText{{Content: "dispatched"}}}}, nil
}

type syncDispatcher struct {
	retries int
}

func (d syncDispatcher) RegisterCommand(handler any) (commands.CommandSubscription, error) {
	h, ok := handler.(*synccmd.SyncPostsHandler)
	if !ok {
		return nil, fmt.Errorf("unsupported handler %T", handler)
	}
	return dispatcher.SubscribeCommand(h, runner.WithMaxRetries(d.retries)), nil
}

func flakyFactory(failures int, attempts *int) synccmd.SourceFactory {
	return func(synccmd.SyncPostsCommand) (interfaces.NotionSource, error) {
		*attempts++
		if *attempts <= failures {
			return nil, errors.New("notion unreachable")
		}
		return pageSource{pages: []interfaces.RemotePage{{
			ID:         "11111111-2222-3333-4444-555555555555",
			Properties: interfaces.PageProperties{Title: "Dispatched", Published: true},
		}}}, nil
	}
}

func TestDispatchedSyncRetriesUntilSuccess(t *testing.T) {
	postDir := filepath.Join(t.TempDir(), "post")
	attempts := 0
	var summary *notionsync.Result

	handler := synccmd.NewSyncPostsHandler(flakyFactory(1, &attempts), synccmd.Options{
		DefaultLang: "en",
		Languages:   []string{"en"},
		OnResult:    func(r *notionsync.Result) { summary = r },
	}, nil)

	result, err := commands.RegisterHandlers(commands.RegistrationOptions{Dispatcher: syncDispatcher{retries: 1}}, handler)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	t.Cleanup(result.Unsubscribe)

	msg := synccmd.SyncPostsCommand{Token: "t", DatabaseID: "db", PostDir: postDir}
	if err := dispatcher.Dispatch(context.Background(), msg); err != nil {
		t.Fatalf("dispatch: expected success after retry, got %v", err)
	}
	if attempts != 2 {
		t.Fatalf("expected 2 attempts (initial + retry), got %d", attempts)
	}
	if summary == nil || summary.Created != 1 {
		t.Fatalf("unexpected summary %+v", summary)
	}
	if _, err := os.Stat(filepath.Join(postDir, "dispatched.md")); err != nil {
		t.Fatalf("expected post from dispatched run: %v", err)
	}
}

func TestDispatchedSyncRetryExhaustionPropagatesError(t *testing.T) {
	attempts := 0
	handler := synccmd.NewSyncPostsHandler(flakyFactory(10, &attempts), synccmd.Options{DefaultLang: "en"}, nil)

	result, err := commands.RegisterHandlers(commands.RegistrationOptions{Dispatcher: syncDispatcher{retries: 2}}, handler)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	t.Cleanup(result.Unsubscribe)

	msg := synccmd.SyncPostsCommand{Token: "t", DatabaseID: "db", PostDir: t.TempDir()}
	if err := dispatcher.Dispatch(context.Background(), msg); err == nil {
		t.Fatal("expected dispatcher to return error after exhausting retries")
	}
	if attempts != 3 {
		t.Fatalf("expected 3 attempts (initial + 2 retries), got %d", attempts)
	}
}
