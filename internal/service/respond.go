package service

import (
	"fmt"
	"strings"

	"github.com/SEP491/FitBridge-Chatbot/internal/domain"
)

// Fixed user-facing messages. Store failures and empty result sets
// share the same wording on purpose.
const (
	msgNoTrainers  = "Không tìm thấy huấn luyện viên nào phù hợp với yêu cầu của bạn. Hãy thử mở rộng tiêu chí tìm kiếm!"
	msgNoGyms      = "Không tìm thấy gym nào phù hợp với tiêu chí của bạn. Hãy thử tìm kiếm khác!"
	msgSystemError = "Xin lỗi, đã xảy ra lỗi hệ thống. Vui lòng thử lại!"
)

func msgNoGymsWithin(radiusKm int) string {
	return fmt.Sprintf("Không tìm thấy gym nào trong bán kính %dkm. Hãy thử mở rộng khu vực tìm kiếm!", radiusKm)
}

// FormatDistance renders a distance the way people talk about it:
// meters when very close, otherwise one decimal with a travel hint.
func FormatDistance(km float64) string {
	switch {
	case km < 0.5:
		return fmt.Sprintf("%dm", int(km*1000))
	case km < 1:
		return fmt.Sprintf("%.1fkm (đi bộ được)", km)
	case km < 3:
		return fmt.Sprintf("%.1fkm (gần)", km)
	case km < 5:
		return fmt.Sprintf("%.1fkm (xe đạp/xe máy)", km)
	case km < 10:
		return fmt.Sprintf("%.1fkm (ô tô/xe máy)", km)
	default:
		return fmt.Sprintf("%.1fkm (xa)", km)
	}
}

// TrainerReply renders the trainer result list. A single match gets the
// detailed card; multiple matches get the interleaved listing with a
// gym/freelance breakdown.
func TrainerReply(trainers []domain.Trainer) string {
	if len(trainers) == 0 {
		return msgNoTrainers
	}
	if len(trainers) == 1 {
		return trainerDetail(trainers[0])
	}

	gymCount := 0
	freelanceCount := 0
	for _, t := range trainers {
		if t.IsFreelance() {
			freelanceCount++
		} else {
			gymCount++
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Tìm thấy %d huấn luyện viên**", len(trainers))
	if gymCount > 0 && freelanceCount > 0 {
		fmt.Fprintf(&b, " *(%d PT gym, %d PT tự do)*", gymCount, freelanceCount)
	}
	b.WriteString(":\n\n")

	for i, t := range trainers {
		fmt.Fprintf(&b, "%d. **%s**", i+1, t.FullName)
		if t.IsFreelance() {
			b.WriteString(" - PT tự do")
			if t.DistanceKm != nil {
				fmt.Fprintf(&b, "\nCách bạn %s", FormatDistance(*t.DistanceKm))
			}
		} else {
			if t.GymName != "" {
				fmt.Fprintf(&b, "\nLàm việc tại %s", t.GymName)
			}
			if t.DistanceKm != nil {
				fmt.Fprintf(&b, "\nCách bạn %s", FormatDistance(*t.DistanceKm))
			}
		}
		if t.Experience != nil {
			fmt.Fprintf(&b, "\nCó %d năm kinh nghiệm", *t.Experience)
		}
		b.WriteString("\n")
		if len(t.GoalTrainings) > 0 {
			goals := t.GoalTrainings
			if len(goals) > 3 {
				goals = goals[:3]
			}
			fmt.Fprintf(&b, "Chuyên môn: %s\n", strings.Join(goals, ", "))
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// trainerDetail is the full card for a single trainer: contact, gym or
// freelance location, professional background and physique stats.
func trainerDetail(t domain.Trainer) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**Thông tin huấn luyện viên: %s**\n\n", t.FullName)

	if t.IsFreelance() {
		b.WriteString("**Huấn luyện viên tự do**\n\n")
	}

	if t.Email != "" {
		fmt.Fprintf(&b, "Email: %s\n", t.Email)
	}
	if t.PhoneNumber != "" {
		fmt.Fprintf(&b, "Điện thoại: %s\n", t.PhoneNumber)
	}

	if !t.IsFreelance() && t.GymName != "" {
		fmt.Fprintf(&b, "\nPhòng gym: **%s**\n", t.GymName)
		if t.GymAddress != "" {
			fmt.Fprintf(&b, "Địa chỉ: %s\n", t.GymAddress)
		}
		if t.DistanceKm != nil {
			fmt.Fprintf(&b, "Khoảng cách: %s\n", FormatDistance(*t.DistanceKm))
		}
	} else if t.IsFreelance() {
		b.WriteString("\nĐịa điểm tập: Linh hoạt theo yêu cầu\n")
		if t.DistanceKm != nil {
			fmt.Fprintf(&b, "Khoảng cách: %s\n", FormatDistance(*t.DistanceKm))
		}
	}

	if t.Experience != nil {
		fmt.Fprintf(&b, "\nKinh nghiệm: %d năm\n", *t.Experience)
	}
	if len(t.Certificates) > 0 {
		fmt.Fprintf(&b, "Chứng chỉ: %d chứng chỉ chuyên môn\n", len(t.Certificates))
	}
	if len(t.GoalTrainings) > 0 {
		fmt.Fprintf(&b, "Chuyên môn: %s\n", strings.Join(t.GoalTrainings, ", "))
	}
	if t.Bio != "" {
		fmt.Fprintf(&b, "\nGiới thiệu: %s\n", t.Bio)
	}

	var physique []string
	if t.Height != nil {
		physique = append(physique, fmt.Sprintf("Chiều cao: %.0fcm", *t.Height))
	}
	if t.Weight != nil {
		physique = append(physique, fmt.Sprintf("Cân nặng: %.0fkg", *t.Weight))
	}
	if len(physique) > 0 {
		fmt.Fprintf(&b, "\nThể trạng: %s\n", strings.Join(physique, ", "))
	}

	return strings.TrimRight(b.String(), "\n")
}

// GymReply renders the gym result list: one detailed entry, a short
// numbered list up to three, or a grouped listing with popular gyms
// first.
func GymReply(gyms []domain.Gym) string {
	if len(gyms) == 0 {
		return "Không tìm thấy gym nào phù hợp với tiêu chí của bạn."
	}

	if len(gyms) == 1 {
		g := gyms[0]
		var b strings.Builder
		fmt.Fprintf(&b, "**%s**", g.GymName)
		if g.DistanceKm != nil {
			fmt.Fprintf(&b, " - %s", FormatDistance(*g.DistanceKm))
		}
		if g.Address != "" {
			fmt.Fprintf(&b, "\nĐịa chỉ: %s", g.Address)
		}
		if g.HotResearch {
			b.WriteString("\nĐây là phòng gym rất được yêu thích!")
		}
		return b.String()
	}

	if len(gyms) <= 3 {
		var b strings.Builder
		fmt.Fprintf(&b, "**Tìm thấy %d phòng gym:**\n", len(gyms))
		for i, g := range gyms {
			name := g.GymName
			if g.HotResearch {
				name += " (Hot)"
			}
			if g.DistanceKm != nil {
				name += fmt.Sprintf(" (%s)", FormatDistance(*g.DistanceKm))
			}
			fmt.Fprintf(&b, "%d. **%s**\n", i+1, name)
		}
		return strings.TrimRight(b.String(), "\n")
	}

	var hot, others []domain.Gym
	for _, g := range gyms {
		if g.HotResearch {
			hot = append(hot, g)
		} else {
			others = append(others, g)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Tìm thấy %d phòng gym!**\n", len(gyms))

	writeEntry := func(i int, g domain.Gym) {
		name := g.GymName
		if g.DistanceKm != nil {
			name += fmt.Sprintf(" (%s)", FormatDistance(*g.DistanceKm))
		}
		fmt.Fprintf(&b, "%d. **%s**\n", i, name)
	}

	if len(hot) > 0 {
		b.WriteString("**Các phòng gym phổ biến:**\n")
		for i, g := range hot {
			writeEntry(i+1, g)
		}
		if len(others) > 0 {
			b.WriteString("\n**Các phòng gym khác:**\n")
			for i, g := range others {
				writeEntry(len(hot)+i+1, g)
			}
		}
	} else {
		b.WriteString("**Tất cả phòng gym:**\n")
		for i, g := range gyms {
			writeEntry(i+1, g)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
