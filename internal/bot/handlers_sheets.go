package bot

import (
	"fmt"

	"restobot/internal/models"
	"restobot/internal/telegram/callbacks"
	tghelpers "restobot/internal/telegram/helpers"
	"restobot/internal/telegram/keyboard"
	"restobot/internal/telegram/state"

	tele "gopkg.in/telebot.v4"
)

func (a *App) onSheetOptions(c tele.Context) error {
	text, markup := sheetOptionsScreen()
	return tghelpers.EditOrSendHTML(c, text, markup)
}

func (a *App) onSheetView(c tele.Context) error {
	payload := callbacks.CallbackPayload(c)
	if !models.ValidSheetType(payload) {
		return tghelpers.EditOrSendHTML(c, "Лист не найден.",
			keyboard.InlineButtons([]keyboard.InlineBtn{backButton(cbSheet)}))
	}

	ctx := tghelpers.BuildContext(c)
	sheet, err := a.sheets.Get(ctx, models.SheetType(payload))
	if err != nil {
		return tghelpers.EditOrSendHTML(c, "Лист не найден.",
			keyboard.InlineButtons([]keyboard.InlineBtn{backButton(cbSheet)}))
	}

	text, markup := sheetScreen(sheet)
	return tghelpers.EditOrSendHTML(c, text, markup)
}

// onSheetSet arms the sheet-text prompt. Admin access is enforced by the
// callback registration.
func (a *App) onSheetSet(c tele.Context) error {
	payload := callbacks.CallbackPayload(c)
	if !models.ValidSheetType(payload) {
		return tghelpers.EditOrSendHTML(c, "Лист не найден.",
			keyboard.InlineButtons([]keyboard.InlineBtn{backButton(cbSheet)}))
	}

	st := models.SheetType(payload)
	a.states.Set(c.Sender().ID, state.Pending{Kind: state.KindSheetText, Sheet: st})
	return tghelpers.EditOrSendHTML(c,
		fmt.Sprintf("Введите новый текст для %s:", sheetName(st)))
}
