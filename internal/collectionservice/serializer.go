package collectionservice

import (
	"fmt"
	"strings"
	"time"
)

// FormatInfo 返回集合信息的格式化字符串表示
func FormatInfo(info Info) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Collection: %s\n", info.Name))
	sb.WriteString(fmt.Sprintf("ID: %s\n", info.ID))
	sb.WriteString(fmt.Sprintf("Kind: %s\n", info.Kind))
	sb.WriteString(fmt.Sprintf("Entries: %d\n", info.Entries))
	if info.Kind.Hashed() {
		sb.WriteString(fmt.Sprintf("Buckets: %d (fill ratio %.2f)\n", info.Capacity, info.FillRatio))
	}
	sb.WriteString(fmt.Sprintf("Created: %s\n", formatTimeAgo(info.CreatedAt)))

	return sb.String()
}

// FormatStats 返回集合统计信息的格式化字符串表示
func FormatStats(info Info) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Entries: %d\n", info.Entries))
	if info.Kind.Hashed() {
		sb.WriteString(fmt.Sprintf("Buckets: %d\n", info.Capacity))
		sb.WriteString(fmt.Sprintf("Fill ratio: %.2f\n", info.FillRatio))
	}
	sb.WriteString(fmt.Sprintf("Created: %s\n", formatTimeAgo(info.CreatedAt)))
	sb.WriteString(fmt.Sprintf("Operations: %d inserted, %d removed\n",
		info.Stats.Inserted, info.Stats.Removed))

	if info.Stats.Rejected > 0 {
		sb.WriteString(fmt.Sprintf("Rejected: %d\n", info.Stats.Rejected))
	}
	if info.Stats.Resized > 0 {
		sb.WriteString(fmt.Sprintf("Resized: %d times\n", info.Stats.Resized))
	}

	return sb.String()
}

// formatTimeAgo 将时间格式化为人类可读的"多久之前"字符串
func formatTimeAgo(t time.Time) string {
	duration := time.Since(t)

	seconds := int(duration.Seconds())
	if seconds < 60 {
		return fmt.Sprintf("%d seconds ago", seconds)
	}

	minutes := int(duration.Minutes())
	if minutes < 60 {
		return fmt.Sprintf("%d minutes ago", minutes)
	}

	hours := int(duration.Hours())
	if hours < 24 {
		return fmt.Sprintf("%d hours ago", hours)
	}

	days := int(duration.Hours() / 24)
	return fmt.Sprintf("%d days ago", days)
}

// ParseItems 解析以逗号分隔的元素字符串，忽略空白元素
func ParseItems(itemsStr string) []string {
	if itemsStr == "" {
		return nil
	}

	var items []string
	for _, item := range strings.Split(itemsStr, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// FormatItems 将元素切片格式化为以逗号分隔的字符串
func FormatItems(items []string) string {
	return strings.Join(items, ",")
}
