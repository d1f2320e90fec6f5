package proposal

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/fox-one/mixin-sdk-go"
)

func generateButtons(items []Item) mixin.AppButtonGroupMessage {
	var buttons mixin.AppButtonGroupMessage

	for _, item := range items {
		if item.Action == "" {
			continue
		}

		buttons = append(buttons, mixin.AppButtonMessage{
			Label:  strings.Title(item.Key),
			Action: item.Action,
			Color:  randomHexColor(),
		})
	}

	return buttons
}

func randomHexColor() string {
	return fmt.Sprintf("#%06X", rand.Intn(0xFFFFFF+1))
}
