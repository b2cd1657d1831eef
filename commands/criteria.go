package commands

import (
	"github.com/penwyp/go-marks/internal/core/selection"
	"github.com/spf13/pflag"
)

// criteriaFlags are the selection flags shared by list and sum.
type criteriaFlags struct {
	from, to      string
	after, before string
	today         bool
	yesterday     bool
	thisWeek      bool
	lastWeek      bool
	tags          []string
	withoutTags   []string
	grep          string
	any           bool
}

func (f *criteriaFlags) register(flags *pflag.FlagSet) {
	flags.StringVar(&f.from, "from", "", "First mark id (prefix) of the range")
	flags.StringVar(&f.to, "to", "", "Last mark id (prefix) of the range")
	flags.StringVar(&f.after, "after", "", "Marks at or after this time")
	flags.StringVar(&f.before, "before", "", "Marks before this time")
	flags.BoolVar(&f.today, "today", false, "Marks from today")
	flags.BoolVar(&f.yesterday, "yesterday", false, "Marks from yesterday")
	flags.BoolVar(&f.thisWeek, "this-week", false, "Marks from this week")
	flags.BoolVar(&f.lastWeek, "last-week", false, "Marks from last week")
	flags.StringSliceVarP(&f.tags, "tag", "t", nil, "Marks carrying all these tags")
	flags.StringSliceVar(&f.withoutTags, "without-tag", nil, "Marks carrying none of these tags")
	flags.StringVarP(&f.grep, "grep", "g", "", "Marks whose summary matches this regular expression")
	flags.BoolVar(&f.any, "any", false, "Select marks matching any criterion instead of all")
}

// criteria converts the flags, resolving time arguments against the app clock.
func (f *criteriaFlags) criteria(a *app) (selection.Criteria, error) {
	now := a.now()
	c := selection.Criteria{
		FromID:     f.from,
		ToID:       f.to,
		Today:      f.today,
		Yesterday:  f.yesterday,
		ThisWeek:   f.thisWeek,
		LastWeek:   f.lastWeek,
		TagsAllOf:  f.tags,
		TagsNoneOf: f.withoutTags,
		Text:       f.grep,
		Union:      f.any,
	}

	after, err := parseAt(f.after, now)
	if err != nil {
		return c, err
	}
	before, err := parseAt(f.before, now)
	if err != nil {
		return c, err
	}
	c.After, c.Before = after, before
	return c, nil
}

func (a *app) selector() *selection.Selector {
	return selection.NewSelector(a.cfg.FirstWeekday())
}
