package stats

import (
	"sort"
	"time"

	"bizadmin/internal/admin/model"

	"github.com/shopspring/decimal"
)

// GroupProjectsByMonth counts projects and sums their budgets per month, oldest month first.
// Projects without a start or creation date are left out.
func GroupProjectsByMonth(projects []*model.Project) []model.MonthlyBudget {
	byMonth := make(map[string]*model.MonthlyBudget)
	for _, p := range projects {
		key := p.MonthKey()
		if key == "" {
			continue
		}
		m, ok := byMonth[key]
		if !ok {
			m = &model.MonthlyBudget{Month: key, Budget: decimal.Zero}
			byMonth[key] = m
		}
		m.Count++
		m.Budget = m.Budget.Add(p.Budget)
	}

	out := make([]model.MonthlyBudget, 0, len(byMonth))
	for _, m := range byMonth {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// IsActiveProject reports whether a project still consumes capacity.
func IsActiveProject(p *model.Project) bool {
	s := p.StatusOrDefault()
	return s == model.ProjectInProgress || s == model.ProjectPlanned
}

// Projects builds the project dashboard. Milestones due within window after now are upcoming;
// open milestones due before now are overdue.
func Projects(projects []*model.Project, now time.Time, window time.Duration) model.ProjectDashboard {
	d := model.ProjectDashboard{
		TotalProjects:      len(projects),
		TotalBudget:        decimal.Zero,
		TotalSpent:         decimal.Zero,
		OverdueMilestones:  make([]model.MilestoneRef, 0),
		UpcomingMilestones: make([]model.MilestoneRef, 0),
	}

	horizon := now.Add(window)
	for _, p := range projects {
		if IsActiveProject(p) {
			d.ActiveProjects++
		}
		d.TotalBudget = d.TotalBudget.Add(p.Budget)
		d.TotalSpent = d.TotalSpent.Add(p.Spent)
		if p.Budget.IsPositive() && p.Spent.GreaterThan(p.Budget) {
			d.OverBudget++
		}

		for _, m := range p.Milestones {
			d.MilestonesTotal++
			if m.Completed {
				d.MilestonesCompleted++
				continue
			}
			ref := model.MilestoneRef{ProjectID: p.ID, ProjectName: p.Name, Milestone: m}
			switch {
			case m.DueDate.Before(now):
				d.OverdueMilestones = append(d.OverdueMilestones, ref)
			case !m.DueDate.After(horizon):
				d.UpcomingMilestones = append(d.UpcomingMilestones, ref)
			}
		}
	}

	d.ByStatus = countBy(projects, func(p *model.Project) string { return p.StatusOrDefault() })
	d.Monthly = GroupProjectsByMonth(projects)

	byDue := func(refs []model.MilestoneRef) {
		sort.SliceStable(refs, func(i, j int) bool { return refs[i].Milestone.DueDate.Before(refs[j].Milestone.DueDate) })
	}
	byDue(d.OverdueMilestones)
	byDue(d.UpcomingMilestones)

	return d
}
