package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"tg_account_bot/internal/model"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (b *Bot) handleUserAccounts(ctx context.Context, msg *tgbotapi.Message) {
	if !b.isAdmin(msg.From.ID) {
		return
	}

	args := strings.Fields(msg.CommandArguments())
	if len(args) != 1 {
		b.reply(msg.Chat.ID, "Amfani: /user_accounts [User ID]")
		return
	}
	userID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		b.reply(msg.Chat.ID, "User ID dole ya zama lamba.")
		return
	}

	count, err := b.svc.UserAccountCount(ctx, userID)
	if err != nil {
		b.fail(msg, model.LanguageHausa, err)
		return
	}
	b.reply(msg.Chat.ID, fmt.Sprintf(
		"User ID %d yana da accounts guda %d da aka karba, kuma a shirye suke don biya.",
		userID, count))
}

func (b *Bot) handleMarkPaid(ctx context.Context, msg *tgbotapi.Message) {
	if !b.isAdmin(msg.From.ID) {
		return
	}

	args := strings.Fields(msg.CommandArguments())
	if len(args) != 2 {
		b.reply(msg.Chat.ID, "Amfani: /mark_paid [User ID] [Adadin Accounts da Aka Biya]")
		return
	}
	userID, err1 := strconv.ParseInt(args[0], 10, 64)
	count, err2 := strconv.Atoi(args[1])
	if err1 != nil || err2 != nil || count <= 0 {
		b.reply(msg.Chat.ID, "User ID da adadin accounts dole su zama lambobi.")
		return
	}

	updated, err := b.svc.MarkPaid(ctx, userID, count)
	if err != nil {
		b.fail(msg, model.LanguageHausa, err)
		return
	}
	b.reply(msg.Chat.ID, fmt.Sprintf(
		"An yiwa User ID %d alamar biya don accounts guda %d. "+
			"An cire su daga jerin biyan da ake jira, an kuma sanya su a matsayin wanda aka biya.",
		userID, updated))
}

func (b *Bot) handleSetBuyer(ctx context.Context, msg *tgbotapi.Message) {
	if !b.isAdmin(msg.From.ID) {
		return
	}

	args := strings.Fields(msg.CommandArguments())
	if len(args) != 2 {
		b.reply(msg.Chat.ID, "Amfani: /set_buyer [Phone] [Buyer User ID]")
		return
	}
	buyerID, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		b.reply(msg.Chat.ID, "Buyer User ID dole ya zama lamba.")
		return
	}

	if err := b.svc.AssignBuyer(ctx, args[0], buyerID); err != nil {
		b.fail(msg, model.LanguageHausa, err)
		return
	}
	b.reply(msg.Chat.ID, fmt.Sprintf(
		"An danganta account %s da Buyer ID %d. Za a tura masa lambobin shiga.",
		args[0], buyerID))
}

func (b *Bot) handleRelease(ctx context.Context, msg *tgbotapi.Message) {
	if !b.isAdmin(msg.From.ID) {
		return
	}

	args := strings.Fields(msg.CommandArguments())
	if len(args) != 1 {
		b.reply(msg.Chat.ID, "Amfani: /release [Phone]")
		return
	}

	if err := b.svc.ReleaseAccount(ctx, args[0]); err != nil {
		b.fail(msg, model.LanguageHausa, err)
		return
	}
	b.reply(msg.Chat.ID, fmt.Sprintf("An fita daga account %s.", args[0]))
}

func (b *Bot) handleCompletedTodayPayment(msg *tgbotapi.Message) {
	if !b.isAdmin(msg.From.ID) {
		return
	}

	b.reply(b.cfg.ChannelID,
		"SANARWA: An biya duk wanda ya nemi biya yau! Muna maku fatan alheri, sai gobe karfe 8:00 na safe.")
	b.reply(msg.Chat.ID, "An tura sanarwa zuwa channel.")
}

func (b *Bot) handleStats(ctx context.Context, msg *tgbotapi.Message) {
	if !b.isAdmin(msg.From.ID) {
		return
	}

	stats, err := b.svc.Stats(ctx)
	if err != nil {
		b.fail(msg, model.LanguageHausa, err)
		return
	}

	var sb strings.Builder
	sb.WriteString("📊 *Statistics:*\n")
	for _, status := range []model.AccountStatus{
		model.AccountPending, model.AccountSuccessful, model.AccountFailed,
	} {
		if count, ok := stats.ByStatus[status]; ok {
			sb.WriteString(fmt.Sprintf("• %s: %d\n", status, count))
		}
	}
	b.replyMarkdown(msg.Chat.ID, sb.String())
}
