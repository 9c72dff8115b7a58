// Command storefront is a manual-testing client: it drives the cart and
// chat-session stores against a running stub CMS, persisting to the local
// file backend the way a browser client persists to local storage.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"storefront-core/internal/cart"
	"storefront-core/internal/cms"
	"storefront-core/internal/config"
	"storefront-core/internal/domain"
	"storefront-core/internal/locale"
	"storefront-core/internal/session"
	"storefront-core/internal/storage"
	"storefront-core/internal/ticket"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[storefront] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	backend, err := storage.NewFile(cfg.StorageDir)
	if err != nil {
		logger.Fatalf("open storage dir: %v", err)
	}

	client := cms.New(cfg.CMSBaseURL)
	loc := cfg.DefaultLocale

	// cart: fetch a localized product, add it twice, bump the quantity
	product, err := client.ProductBySlug(ctx, "filter-x", loc)
	if err != nil {
		logger.Fatalf("fetch product: %v", err)
	}
	cartStore := cart.NewStore(ctx, backend, logger)
	cartStore.AddItem(ctx, *product, 1)
	cartStore.AddItem(ctx, *product, 1)
	cartStore.UpdateQuantity(ctx, product.Key(), 5)

	state := cartStore.State()
	logger.Printf("cart: %d items, total %s", state.TotalItems,
		locale.FormatPrice(state.TotalPriceCents, product.CurrencyMode, loc))

	// chat widget: seed a session, ask a question, append the reply
	sessions := session.NewStore(ctx, backend, logger)
	sessions.EnsureActiveSession(ctx, "Hi! How can I help you today?")
	question := "Which filter handles hard water best?"
	sessions.AppendMessage(ctx, domain.RoleUser, question)
	if reply, err := client.AssistantReply(ctx, loc, question); err != nil {
		logger.Printf("assistant unavailable: %v", err)
	} else {
		sessions.AppendMessage(ctx, domain.RoleAssistant, reply)
	}
	if active, ok := sessions.ActiveSession(); ok {
		logger.Printf("chat session %q has %d messages", active.Title, len(active.Messages))
	}

	// support ticket: optimistic reply, confirmed from the server response,
	// then a short polling window
	remote, err := client.CreateTicket(ctx, cms.CreateTicketInput{
		Subject: "Filter X drips",
		Text:    "My new Filter X drips under the sink.",
		Locale:  loc,
	})
	if err != nil {
		logger.Fatalf("create ticket: %v", err)
	}
	thread := ticket.NewThread(remote)
	poller := ticket.NewPoller(thread, client.TicketByID, cfg.PollInterval, logger, func() {
		logger.Printf("ticket %s updated: %d messages, status %s",
			thread.TicketID(), len(thread.Messages()), thread.Status())
	})
	poller.Start(ctx)

	optimistic := thread.BeginSend("It drips faster when the tap is hot.")
	if confirmed, err := client.AppendReply(ctx, remote.ID, optimistic.Text); err != nil {
		logger.Printf("reply failed, rolling back optimistic entry: %v", err)
		thread.FailSend(optimistic.ID)
	} else {
		thread.ConfirmSend(confirmed)
	}

	select {
	case <-poller.Done():
	case <-time.After(3 * cfg.PollInterval):
		poller.Stop()
	}
	logger.Printf("ticket %s final status: %s", thread.TicketID(), thread.Status())
}
