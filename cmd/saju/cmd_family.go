package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"saju-lab/saju"
)

var familyFlags struct {
	parent     subjectFlags
	child      subjectFlags
	parentName string
	childName  string
}

var familyCmd = &cobra.Command{
	Use:   "family",
	Short: "Compute the parent and child fortune for the day",
	RunE:  runFamily,
}

func init() {
	f := familyCmd.Flags()
	f.StringVar(&familyFlags.parent.birthDate, "parent-birth-date", "", "Parent birth date YYYY-MM-DD (required)")
	f.StringVar(&familyFlags.parent.birthTime, "parent-birth-time", "unknown", "Parent birth time HH:MM or \"unknown\"")
	f.StringVar(&familyFlags.child.birthDate, "child-birth-date", "", "Child birth date YYYY-MM-DD (required)")
	f.StringVar(&familyFlags.child.birthTime, "child-birth-time", "unknown", "Child birth time HH:MM or \"unknown\"")
	f.StringVar(&familyFlags.parentName, "parent-name", "", "Parent display name")
	f.StringVar(&familyFlags.childName, "child-name", "", "Child display name")
}

func runFamily(cmd *cobra.Command, _ []string) error {
	eval, err := evalDate()
	if err != nil {
		return err
	}
	res, err := saju.ComputeFamily(saju.FamilyInput{
		Parent: saju.SubjectInput{Name: familyFlags.parentName, BirthDate: familyFlags.parent.birthDate, BirthTime: familyFlags.parent.birthTime},
		Child:  saju.SubjectInput{Name: familyFlags.childName, BirthDate: familyFlags.child.birthDate, BirthTime: familyFlags.child.birthTime},
	}, eval)
	if err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), res, func(w io.Writer) {
		fam := res.Family
		fmt.Fprintf(w, "%s & %s, %s\n", fam.Parent.Name, fam.Child.Name, res.EvaluationDate)
		fmt.Fprintf(w, "Relation:  %s (%s), %d\n", fam.RelationName, fam.RelationType, res.Relation.Score)
		fmt.Fprintf(w, "Score:     %d (%s)  story %d\n", fam.OverallScore, fam.ShareLevel, fam.StoryScore)
		fmt.Fprintf(w, "Season:    %s %+d, %s\n", fam.Season.Name, fam.Season.Adjustment, fam.Season.Effect)
		fmt.Fprintf(w, "Message:   %s\n", fam.MainMessage)
		fmt.Fprintf(w, "Advice:    %s\n", fam.RelationAdvice)
		if res.Story != nil {
			fmt.Fprintf(w, "\n%s\n%s\n%s\n%s\n\n", res.Story.Intro, res.Story.Body, res.Story.Effect, res.Story.Conclusion)
		}
		if res.Hexagon != nil {
			for _, axis := range saju.HexagonAxes {
				fmt.Fprintf(w, "  %-9s %3d\n", axis, res.Hexagon.Scores[axis])
			}
		}
		writeLucky(w, res.Lucky)
	})
}
