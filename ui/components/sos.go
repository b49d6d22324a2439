package components

import (
	"fmt"
	"strings"

	"github.com/Rorical/SafeHer/ui/styles"
)

// RenderSOS draws the SOS control with one dot per tap still needed.
func RenderSOS(tapCount, threshold int, number string) string {
	if threshold < 1 {
		threshold = 1
	}
	if tapCount > threshold {
		tapCount = threshold
	}
	dots := strings.Repeat("●", tapCount) + strings.Repeat("○", threshold-tapCount)
	button := styles.SOSButtonStyle(tapCount > 0).Render("SOS\n" + dots)

	hint := styles.SubtitleStyle().Render(
		fmt.Sprintf("Press space %d times quickly to call %s and alert your contacts", threshold, number))
	return button + "\n" + hint
}
