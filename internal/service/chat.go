package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bookswap/exchange-service/internal/errs"
	"github.com/bookswap/exchange-service/internal/model"
)

// channelNamespace seeds the deterministic channel uid: the same transaction
// always maps to the same channel, so a retried provisioning call cannot
// mint a second one.
var channelNamespace = uuid.MustParse("3f2d8e0a-5b1c-4f9e-8d7a-6c5b4a3f2e1d")

// ProvisionChannel creates (or returns) the single chat channel for a
// rental or purchase, identified by its transaction uid.
func (s *Service) ProvisionChannel(ctx context.Context, transactionUid, caller string) (model.Channel, error) {
	var (
		bookID       int
		participantA string
		participantB string
	)

	rental, err := s.repo.GetRental(ctx, transactionUid)
	switch {
	case err == nil:
		bookID, participantA, participantB = rental.BookID, rental.Owner, rental.Renter
	case errors.Is(err, errs.ErrNotFound):
		purchase, perr := s.repo.GetPurchase(ctx, transactionUid)
		if perr != nil {
			return model.Channel{}, perr
		}
		bookID, participantA, participantB = purchase.BookID, purchase.Seller, purchase.Buyer
	default:
		return model.Channel{}, err
	}

	if participantA == "" || participantB == "" {
		return model.Channel{}, errs.ErrMissingParticipant
	}
	if caller != participantA && caller != participantB {
		return model.Channel{}, errs.ErrForbidden
	}

	book, err := s.repo.GetBookByID(ctx, bookID)
	if err != nil {
		return model.Channel{}, err
	}

	ch := model.Channel{
		ChannelUid:     uuid.NewSHA1(channelNamespace, []byte(transactionUid)).String(),
		TransactionUid: transactionUid,
		BookID:         book.ID,
		BookTitle:      book.Title,
		ParticipantA:   participantA,
		ParticipantB:   participantB,
	}
	created, err := s.repo.CreateChannel(ctx, ch)
	if err != nil {
		return model.Channel{}, err
	}
	s.log.Debug("channel provisioned",
		zap.String("channelUid", created.ChannelUid),
		zap.String("transactionUid", transactionUid))
	return created, nil
}

func (s *Service) ListChannels(ctx context.Context, user string) ([]model.Channel, error) {
	return s.repo.ListChannels(ctx, user)
}

func (s *Service) getMemberChannel(ctx context.Context, channelUid, user string) (model.Channel, error) {
	ch, err := s.repo.GetChannel(ctx, channelUid)
	if err != nil {
		return model.Channel{}, err
	}
	if !ch.HasParticipant(user) {
		return model.Channel{}, errs.ErrForbidden
	}
	return ch, nil
}

// SendMessage appends to the channel log and pushes the accepted message to
// live subscribers. The store's accept order is the channel order.
func (s *Service) SendMessage(ctx context.Context, channelUid string, req model.SendMessageRequest) (model.Message, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return model.Message{}, errs.ErrEmptyMessage
	}
	ch, err := s.getMemberChannel(ctx, channelUid, req.Sender)
	if err != nil {
		return model.Message{}, err
	}
	msg, err := s.repo.CreateMessage(ctx, ch.ID, req.Sender, text)
	if err != nil {
		return model.Message{}, err
	}
	s.hub.Publish(channelUid, msg)
	return msg, nil
}

func (s *Service) GetMessages(ctx context.Context, channelUid, user string) ([]model.Message, error) {
	ch, err := s.getMemberChannel(ctx, channelUid, user)
	if err != nil {
		return nil, err
	}
	return s.repo.ListMessages(ctx, ch.ID)
}

// Subscribe returns the full history plus a live feed of subsequent appends.
// The hub subscription is registered before history is read, so nothing can
// fall in the gap; messages seen in both are dropped from the feed by id.
func (s *Service) Subscribe(ctx context.Context, channelUid, user string) ([]model.Message, <-chan model.Message, func(), error) {
	ch, err := s.getMemberChannel(ctx, channelUid, user)
	if err != nil {
		return nil, nil, nil, err
	}

	live, cancel := s.hub.Subscribe(channelUid)
	history, err := s.repo.ListMessages(ctx, ch.ID)
	if err != nil {
		cancel()
		return nil, nil, nil, err
	}

	var lastID int64
	if len(history) > 0 {
		lastID = history[len(history)-1].ID
	}

	out := make(chan model.Message, subBuffer)
	go func() {
		defer close(out)
		for {
			select {
			case msg, ok := <-live:
				if !ok {
					return
				}
				if msg.ID <= lastID {
					continue
				}
				select {
				case out <- msg:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return history, out, cancel, nil
}
