package board

import (
	"reflect"
	"testing"

	"saleboard/internal/model"
)

func rankingFixture() *model.MergedDataset {
	return mergedWith(
		[]string{model.ColTotalScore, model.ColWeightedTeamScore},
		&model.EmployeeRecord{Name: "E1", Team: "A队", TotalScore: amount(30), WeightedTeamScore: amount(100)},
		&model.EmployeeRecord{Name: "E2", Team: "B队", TotalScore: amount(25), WeightedTeamScore: amount(90)},
		&model.EmployeeRecord{Name: "E3", Team: "C队", TotalScore: amount(20), WeightedTeamScore: amount(50)},
		&model.EmployeeRecord{Name: "E4", Team: "D队", TotalScore: amount(15), WeightedTeamScore: amount(40)},
		&model.EmployeeRecord{Name: "E5", Team: "A队", TotalScore: amount(10), WeightedTeamScore: amount(100)},
	)
}

func teamNames(teams []*model.TeamSummary) []string {
	out := make([]string, 0, len(teams))
	for _, t := range teams {
		out = append(out, t.Name)
	}
	return out
}

func memberNames(members []*model.EmployeeRecord) []string {
	out := make([]string, 0, len(members))
	for _, m := range members {
		out = append(out, m.Name)
	}
	return out
}

func TestRankTeams(t *testing.T) {
	t.Parallel()

	ranked := RankTeams(rankingFixture())

	if got, want := teamNames(ranked), []string{"A队", "B队", "C队", "D队"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("order: got=%v want=%v", got, want)
	}
	for i, team := range ranked {
		if team.Rank != i+1 {
			t.Fatalf("rank of %s: got=%d want=%d", team.Name, team.Rank, i+1)
		}
	}
	if got := memberNames(ranked[0].Members); !reflect.DeepEqual(got, []string{"E1", "E5"}) {
		t.Fatalf("A队 members: got=%v", got)
	}
}

func TestRankTeams_Idempotent(t *testing.T) {
	t.Parallel()

	d := rankingFixture()
	first := teamNames(RankTeams(d))
	second := teamNames(RankTeams(d))
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("ranking not repeatable: %v vs %v", first, second)
	}
}

func TestRankTeams_EmptyTeamExcluded(t *testing.T) {
	t.Parallel()

	d := mergedWith(
		[]string{model.ColTotalScore, model.ColWeightedTeamScore},
		&model.EmployeeRecord{Name: "E1", Team: "A队", WeightedTeamScore: amount(100)},
		&model.EmployeeRecord{Name: "E2", Team: "", WeightedTeamScore: amount(200)},
	)

	ranked := RankTeams(d)
	if got := teamNames(ranked); !reflect.DeepEqual(got, []string{"A队"}) {
		t.Fatalf("empty team should not participate: got=%v", got)
	}
}

func TestRankTeams_TieKeepsFirstAppearance(t *testing.T) {
	t.Parallel()

	d := mergedWith(
		[]string{model.ColWeightedTeamScore},
		&model.EmployeeRecord{Name: "E1", Team: "甲队", WeightedTeamScore: amount(80)},
		&model.EmployeeRecord{Name: "E2", Team: "乙队", WeightedTeamScore: amount(80)},
	)

	if got := teamNames(RankTeams(d)); !reflect.DeepEqual(got, []string{"甲队", "乙队"}) {
		t.Fatalf("tie order: got=%v", got)
	}
}

func TestPartition(t *testing.T) {
	t.Parallel()

	d := rankingFixture()
	c := Partition(RankTeams(d), d)

	if got, want := c.RedTeams, []string{"A队", "B队"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("red teams: got=%v want=%v", got, want)
	}
	if got, want := c.BlackTeams, []string{"C队", "D队"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("black teams: got=%v want=%v", got, want)
	}
	// 红榜按个人总积分降序
	if got, want := memberNames(c.Red), []string{"E1", "E2", "E5"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("red members: got=%v want=%v", got, want)
	}
	// 黑榜按个人总积分升序
	if got, want := memberNames(c.Black), []string{"E4", "E3"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("black members: got=%v want=%v", got, want)
	}
	if c.Overlap {
		t.Fatalf("overlap should be false with 4 teams")
	}
}

func TestPartition_FewTeamsOverlap(t *testing.T) {
	t.Parallel()

	d := mergedWith(
		[]string{model.ColTotalScore, model.ColWeightedTeamScore},
		&model.EmployeeRecord{Name: "E1", Team: "A队", TotalScore: amount(30), WeightedTeamScore: amount(100)},
		&model.EmployeeRecord{Name: "E2", Team: "B队", TotalScore: amount(20), WeightedTeamScore: amount(90)},
		&model.EmployeeRecord{Name: "E3", Team: "C队", TotalScore: amount(10), WeightedTeamScore: amount(50)},
	)

	c := Partition(RankTeams(d), d)
	if !reflect.DeepEqual(c.RedTeams, []string{"A队", "B队"}) {
		t.Fatalf("red teams: got=%v", c.RedTeams)
	}
	if !reflect.DeepEqual(c.BlackTeams, []string{"B队", "C队"}) {
		t.Fatalf("black teams: got=%v", c.BlackTeams)
	}
	if !c.Overlap {
		t.Fatalf("overlap should be reported with 3 teams")
	}
}

func TestPartition_Empty(t *testing.T) {
	t.Parallel()

	d := mergedWith(nil)
	c := Partition(RankTeams(d), d)
	if len(c.RedTeams) != 0 || len(c.BlackTeams) != 0 || c.Overlap {
		t.Fatalf("unexpected cohorts: %+v", c)
	}
}
