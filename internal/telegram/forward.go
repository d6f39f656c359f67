package telegram

import (
	"context"

	"tg_account_bot/pkg/logger"

	"github.com/gotd/td/tg"
	"go.uber.org/zap"
)

// telegramServiceUserID is the sender of platform service messages,
// including login codes.
const telegramServiceUserID = 777000

// forwardHook watches inbound service messages on a signed-in account
// and resolves the buyer the code should go to. Delivery to the buyer
// is not implemented yet; the hook only records what would be sent.
func (r *Registry) forwardHook(phone string) func(ctx context.Context, e tg.Entities, u *tg.UpdateNewMessage) error {
	return func(ctx context.Context, e tg.Entities, u *tg.UpdateNewMessage) error {
		log := logger.Logger()

		msg, ok := u.Message.(*tg.Message)
		if !ok {
			return nil
		}
		peer, ok := msg.PeerID.(*tg.PeerUser)
		if !ok || peer.UserID != telegramServiceUserID {
			return nil
		}

		buyerID, err := r.buyers.GetBuyerByPhone(ctx, phone)
		if err != nil {
			log.Debug("service message with no buyer mapping",
				zap.String("phone", phone))
			return nil
		}

		log.Info("login code received for sold account",
			zap.String("phone", phone),
			zap.Int64("buyer_id", buyerID),
			zap.String("text", msg.Message))
		return nil
	}
}
