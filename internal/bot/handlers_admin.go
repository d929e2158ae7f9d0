package bot

import (
	"fmt"
	"strconv"

	tghelpers "restobot/internal/telegram/helpers"

	"restobot/internal/models"

	tele "gopkg.in/telebot.v4"
)

const addAdminUsage = "ℹ️ Использование: /add_admin <user_id>\n\n" +
	"Чтобы узнать user_id пользователя, попросите его написать @userinfobot"

func (a *App) onAddAdmin(c tele.Context) error {
	args := c.Args()
	if len(args) == 0 {
		return tghelpers.SendText(c, addAdminUsage)
	}

	newAdminID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || newAdminID <= 0 {
		return tghelpers.SendText(c, "❌ Неверный формат user_id. user_id должен быть числом.")
	}

	ctx := tghelpers.BuildContext(c)
	// Only the id is known at this point; name fields fill in when the
	// new admin is looked up later.
	if err := a.admins.Add(ctx, models.Admin{UserID: newAdminID}); err != nil {
		return tghelpers.SendText(c, "❌ Ошибка при добавлении администратора.")
	}
	return tghelpers.SendText(c, fmt.Sprintf("✅ Пользователь %d добавлен как администратор!", newAdminID))
}

func (a *App) onRemoveAdmin(c tele.Context) error {
	args := c.Args()
	if len(args) == 0 {
		return tghelpers.SendText(c, "ℹ️ Использование: /remove_admin <user_id>")
	}

	removeID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || removeID <= 0 {
		return tghelpers.SendText(c, "❌ Неверный формат user_id.")
	}
	if removeID == c.Sender().ID {
		return tghelpers.SendText(c, "❌ Вы не можете удалить сами себя.")
	}

	ctx := tghelpers.BuildContext(c)
	if err := a.admins.Remove(ctx, removeID); err != nil {
		if isNotFound(err) {
			return tghelpers.SendText(c, fmt.Sprintf("ℹ️ Пользователь %d не является администратором.", removeID))
		}
		return tghelpers.SendText(c, "❌ Ошибка при удалении администратора.")
	}
	return tghelpers.SendText(c, fmt.Sprintf("✅ Пользователь %d удален из администраторов!", removeID))
}

func (a *App) onListAdmins(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	admins, err := a.admins.List(ctx)
	if err != nil {
		return tghelpers.SendText(c, "❌ Не удалось получить список администраторов.")
	}
	return tghelpers.SendHTML(c, adminListText(admins))
}
