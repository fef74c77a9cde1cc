package services

import (
	"fmt"

	"scoopo-app/booking-service/internal/models"
)

// The owner notification is always written in the operator's working
// language (Chinese); the customer confirmation follows the language the
// customer picked on the form.

func OwnerSubject(req models.BookingRequest) string {
	return "新预约通知: " + req.Name
}

func OwnerNotification(req models.BookingRequest) string {
	notes := req.Notes
	if notes == "" {
		notes = "无"
	}

	return fmt.Sprintf(`收到新的预约申请！

客户姓名: %s
电话: %s
邮箱: %s
地址: %s

选择方案: %s
猫咪数量: %d
每周频率: %s
首选时间: %s
备注: %s
语言偏好: %s

请尽快联系客户进行确认。
`,
		req.Name, req.Phone, req.Email, req.Address,
		planOrDefault(req.Plan), req.NumCats, frequencyLabel(req.Frequency, models.LangChinese),
		req.TimeOfDay, notes, req.Language,
	)
}

func CustomerSubject(lang models.Language) string {
	if lang == models.LangChinese {
		return "预约确认 - ScooPo 宠物清洁服务"
	}
	return "Booking Confirmed - ScooPo Pet Cleaning Service"
}

func CustomerConfirmation(req models.BookingRequest) string {
	if req.Language == models.LangChinese {
		return fmt.Sprintf(`您好 %s，

感谢您选择 ScooPo！我们已收到您的预约申请，我们的团队将在 24 小时内与您联系，确认服务时间安排。

您的预约详情
服务方案: %s
猫咪数量: %d
每周期数: %s
服务地址: %s

有疑问？直接回复此邮件即可 - 我们随时为您服务！

ScooPo 宠物清洁
`,
			req.Name, planOrDefault(req.Plan), req.NumCats,
			frequencyLabel(req.Frequency, models.LangChinese), req.Address,
		)
	}

	return fmt.Sprintf(`Hi %s,

Thank you for choosing ScooPo! We've received your booking request and our team will contact you within 24 hours to confirm your service schedule.

Your booking details
Plan: %s
Number of Cats: %d
Visits per Week: %s
Service Address: %s

Questions? Simply reply to this email - we're here to help!

ScooPo Pet Cleaning
`,
		req.Name, planOrDefault(req.Plan), req.NumCats,
		frequencyLabel(req.Frequency, models.LangEnglish), req.Address,
	)
}

func planOrDefault(plan string) string {
	if plan == "" {
		return "Essential"
	}
	return plan
}

func frequencyLabel(freq models.Frequency, lang models.Language) string {
	if lang == models.LangChinese {
		if freq.Custom {
			return "7次以上 (联系定制)"
		}
		return fmt.Sprintf("%d 次/周", freq.Visits)
	}

	if freq.Custom {
		return "7+ (Custom Quote)"
	}
	if freq.Visits == 1 {
		return "1 visit/week"
	}
	return fmt.Sprintf("%d visits/week", freq.Visits)
}
