package game

import (
	"fmt"
	"strings"

	"qtbot/internal/model"
)

func gradeLabel(g model.MonsterGrade) string {
	switch g {
	case model.GradeRare:
		return "희귀"
	case model.GradeElite:
		return "정예"
	default:
		return "일반"
	}
}

// FormatRegistered formats the welcome reply for a new player.
func FormatRegistered(p *model.Player) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🏰 %s님의 던전이 문을 열었습니다!\n\n", p.Name)
	fmt.Fprintf(&b, "Lv.%d | 💰 %d골드 | %d층\n\n", p.Level, p.Gold, p.Floors)
	b.WriteString("'몬스터 소환'으로 첫 몬스터를 고용해 보세요.")
	return b.String()
}

// FormatStatus formats the dungeon overview reply.
func FormatStatus(r *StatusReport) string {
	p := r.Player
	var b strings.Builder
	fmt.Fprintf(&b, "🏰 %s의 던전\n\n", p.Name)
	fmt.Fprintf(&b, "Lv.%d | 💰 %d골드\n", p.Level, p.Gold)
	fmt.Fprintf(&b, "층수: %d층\n", p.Floors)
	fmt.Fprintf(&b, "몬스터: %d마리 (전투력 %d)\n", r.MonsterCount, r.TotalPower)
	fmt.Fprintf(&b, "전적: %d승 %d패\n", p.Wins, p.Losses)
	if len(r.RecentBattles) > 0 {
		b.WriteString("\n최근 전투:\n")
		for _, battle := range r.RecentBattles {
			icon := "🛡 방어 성공"
			if battle.Result == model.BattleLoss {
				icon = "💥 방어 실패"
			}
			fmt.Fprintf(&b, "%s (%+d골드)\n", icon, battle.GoldChange)
		}
	}
	return b.String()
}

// FormatSummon formats the reply after hiring a monster.
func FormatSummon(m *model.Monster, p *model.Player) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🔮 [%s] %s 소환!\n\n", gradeLabel(m.Grade), m.Name)
	fmt.Fprintf(&b, "전투력: %d\n", m.Power)
	fmt.Fprintf(&b, "남은 골드: %d", p.Gold)
	return b.String()
}

// FormatMonsterList formats the stationed monster roster.
func FormatMonsterList(monsters []model.Monster) string {
	if len(monsters) == 0 {
		return "아직 몬스터가 없습니다. '몬스터 소환'으로 고용해 보세요."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "👾 몬스터 %d마리\n", len(monsters))
	total := 0
	for _, m := range monsters {
		fmt.Fprintf(&b, "\n[%s] %s — 전투력 %d", gradeLabel(m.Grade), m.Name, m.Power)
		total += m.Power
	}
	fmt.Fprintf(&b, "\n\n총 전투력: %d", total)
	return b.String()
}

// FormatExpand formats the reply after adding a dungeon floor.
func FormatExpand(p *model.Player, cost int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "⛏ 던전이 %d층으로 확장되었습니다!\n\n", p.Floors)
	fmt.Fprintf(&b, "비용: %d골드\n", cost)
	fmt.Fprintf(&b, "남은 골드: %d", p.Gold)
	return b.String()
}

// FormatDungeonInfo formats the dungeon structure reply.
func FormatDungeonInfo(r *StatusReport) string {
	p := r.Player
	var b strings.Builder
	fmt.Fprintf(&b, "🗼 %s의 던전 구조\n\n", p.Name)
	fmt.Fprintf(&b, "층수: %d층 (층당 방어 보너스 +%d)\n", p.Floors, floorDefenseBonus)
	fmt.Fprintf(&b, "총 방어력: %d\n\n", r.TotalPower+p.Floors*floorDefenseBonus)
	fmt.Fprintf(&b, "다음 확장 비용: %d골드", p.Floors*expandCostPerFloor)
	return b.String()
}

// FormatRaid formats the battle outcome reply.
func FormatRaid(r *RaidReport) string {
	b := r.Battle
	var sb strings.Builder
	sb.WriteString("⚔ 모험가 습격!\n\n")
	fmt.Fprintf(&sb, "침입자 전투력: %d\n", b.RaidPower)
	fmt.Fprintf(&sb, "던전 방어력: %d\n\n", b.Defense)
	if b.Result == model.BattleWin {
		fmt.Fprintf(&sb, "🛡 방어 성공! +%d골드\n", b.GoldChange)
	} else {
		fmt.Fprintf(&sb, "💥 방어 실패... %d골드\n", b.GoldChange)
	}
	if r.LeveledUp {
		fmt.Fprintf(&sb, "\n🎉 레벨 업! Lv.%d 달성!\n", r.Player.Level)
	}
	fmt.Fprintf(&sb, "\n보유 골드: %d", r.Player.Gold)
	return sb.String()
}

// Fixed replies for command error cases.
const (
	MsgNotRegistered     = "아직 등록된 던전이 없습니다.\n'던전 등록'으로 시작해 보세요!"
	MsgAlreadyRegistered = "이미 던전을 운영 중입니다.\n'던전 현황'으로 확인해 보세요."
	MsgNotEnoughGold     = "골드가 부족합니다.\n모험가를 물리쳐 골드를 모아 보세요!"
)
