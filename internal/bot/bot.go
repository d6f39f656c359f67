// Package bot exposes the chat command surface over Telegram long
// polling. Every update is handled in its own goroutine; a panic in
// a handler is recovered at the dispatch boundary so one bad update
// cannot take the process down.
package bot

import (
	"context"
	"fmt"

	"tg_account_bot/internal/model"
	"tg_account_bot/internal/service"
	"tg_account_bot/pkg/logger"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type Config struct {
	Token     string `yaml:"token"`
	AdminID   int64  `yaml:"adminId"`
	ChannelID int64  `yaml:"channelId"`
}

type Bot struct {
	api *tgbotapi.BotAPI
	svc *service.Service
	cfg Config
}

func New(cfg Config, svc *service.Service) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot api: %w", err)
	}

	b := &Bot{api: api, svc: svc, cfg: cfg}
	if err := b.setupCommands(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Bot) setupCommands() error {
	cmds := tgbotapi.NewSetMyCommands(
		tgbotapi.BotCommand{Command: "start", Description: "Fara aiki da bot"},
		tgbotapi.BotCommand{Command: "myaccounts", Description: "Duba lambobin da ka tura"},
		tgbotapi.BotCommand{Command: "withdraw", Description: "Nemi cire kuɗi"},
		tgbotapi.BotCommand{Command: "cancel", Description: "Soke aiki"},
	)
	if _, err := b.api.Request(cmds); err != nil {
		return fmt.Errorf("failed to set bot commands: %w", err)
	}
	return nil
}

// Run consumes the long-poll update stream until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	log := logger.Logger()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.api.GetUpdatesChan(u)

	log.Info("bot polling started", zap.String("username", b.api.Self.UserName))

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			go b.dispatch(ctx, update)
		}
	}
}

func (b *Bot) dispatch(ctx context.Context, update tgbotapi.Update) {
	log := logger.Logger()

	msg := update.Message
	if msg == nil || msg.From == nil {
		return
	}

	lang := b.language(ctx, msg.From.ID)

	defer func() {
		if r := recover(); r != nil {
			log.Error("handler panicked",
				zap.Int64("user_id", msg.From.ID), zap.Any("panic", r))
			b.reply(msg.Chat.ID, text(lang, "apology"))
		}
	}()

	if msg.IsCommand() {
		b.dispatchCommand(ctx, msg, lang)
		return
	}
	b.dispatchText(ctx, msg, lang)
}

func (b *Bot) dispatchCommand(ctx context.Context, msg *tgbotapi.Message, lang model.Language) {
	switch msg.Command() {
	case "start":
		b.handleStart(ctx, msg, lang)
	case "cancel":
		b.handleCancel(ctx, msg, lang)
	case "myaccounts":
		b.handleMyAccounts(ctx, msg, lang)
	case "withdraw":
		b.handleWithdraw(ctx, msg, lang)
	case "account_balance":
		b.handleBalance(ctx, msg, lang)
	case "language":
		b.handleLanguage(ctx, msg, lang)
	case "snapshot":
		b.handleAccountReceipt(ctx, msg, lang, true)
	case "my_receipt":
		b.handleAccountReceipt(ctx, msg, lang, false)
	case "payment_receipt":
		b.handlePaymentReceipt(ctx, msg, lang)
	case "share_receipt":
		b.handleShareReceipt(msg, lang)
	case "user_accounts":
		b.handleUserAccounts(ctx, msg)
	case "mark_paid":
		b.handleMarkPaid(ctx, msg)
	case "set_buyer":
		b.handleSetBuyer(ctx, msg)
	case "release":
		b.handleRelease(ctx, msg)
	case "completed_today_payment":
		b.handleCompletedTodayPayment(msg)
	case "stats":
		b.handleStats(ctx, msg)
	default:
		b.reply(msg.Chat.ID, text(lang, "start_hint"))
	}
}

// dispatchText routes a plain message by the user's dialog position.
func (b *Bot) dispatchText(ctx context.Context, msg *tgbotapi.Message, lang model.Language) {
	if b.handleLanguageChoice(ctx, msg) {
		return
	}

	step, err := b.svc.CurrentStep(ctx, msg.From.ID)
	if err != nil {
		logger.Logger().Error("failed to load dialog step",
			zap.Int64("user_id", msg.From.ID), zap.Error(err))
		b.reply(msg.Chat.ID, text(lang, "apology"))
		return
	}

	switch step {
	case model.StepAwaitingPhone:
		b.handlePhone(ctx, msg, lang)
	case model.StepAwaitingCode:
		b.handleCode(ctx, msg, lang)
	case model.StepAwaitingBankDetails:
		b.handleBankDetails(ctx, msg, lang)
	default:
		b.reply(msg.Chat.ID, text(lang, "start_hint"))
	}
}

func (b *Bot) language(ctx context.Context, userID int64) model.Language {
	lang, err := b.svc.Language(ctx, userID)
	if err != nil {
		return model.LanguageHausa
	}
	return lang
}

func (b *Bot) isAdmin(userID int64) bool {
	return userID == b.cfg.AdminID
}

func (b *Bot) reply(chatID int64, text string) {
	b.send(tgbotapi.NewMessage(chatID, text))
}

func (b *Bot) replyMarkdown(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	b.send(msg)
}

func (b *Bot) send(c tgbotapi.Chattable) {
	if _, err := b.api.Send(c); err != nil {
		logger.Logger().Error("failed to send message", zap.Error(err))
	}
}
