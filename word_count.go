package slackify

import "github.com/riverfjs/slackify-go/internal/converter"

// CountText 计算文本在 Slack 中的长度（字符数）
//
// Slack 的文本限制（section 3000、header 150、消息 40000 等）
// 均按字符计数，而不是字节。
func CountText(text string) int {
	return converter.RuneLen(text)
}
