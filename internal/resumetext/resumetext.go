// Package resumetext flattens a structured resume document into the plain
// text block stored alongside it, ready for downstream text processing.
package resumetext

import (
	"fmt"
	"strings"

	"github.com/justsurfingit/jobtrackr/internal/models"
)

// Convert renders the document section by section. It is pure: the same
// document always yields the same string, and absent fields are simply
// omitted rather than erroring. An empty document yields "".
func Convert(d *models.ResumeData) string {
	if d == nil {
		return ""
	}

	var b strings.Builder

	// Identity lines, no labels
	if d.Name != "" {
		b.WriteString(d.Name + "\n")
	}
	if d.Email != "" {
		b.WriteString(d.Email + "\n")
	}
	if d.Phone != "" {
		b.WriteString(d.Phone + "\n")
	}

	if d.Summary != "" {
		b.WriteString("\n--- SUMMARY ---\n")
		b.WriteString(d.Summary + "\n")
	}

	if len(d.WorkExperience) > 0 {
		b.WriteString("\n--- WORK EXPERIENCE ---\n")
		for _, job := range d.WorkExperience {
			fmt.Fprintf(&b, "\n%s at %s\n", job.Title, job.Company)
			if job.Description != "" {
				b.WriteString(job.Description + "\n")
			}
		}
	}

	if len(d.Education) > 0 {
		b.WriteString("\n--- EDUCATION ---\n")
		for _, edu := range d.Education {
			// An absent fieldOfStudy renders as an empty string,
			// leaving a double space. Deliberately not elided.
			fmt.Fprintf(&b, "\n%s in %s from %s\n", edu.Degree, edu.FieldOfStudy, edu.Institution)
		}
	}

	if len(d.Skills) > 0 {
		b.WriteString("\n--- SKILLS ---\n")
		b.WriteString(strings.Join(d.Skills, ", ") + "\n")
	}

	return strings.TrimSpace(b.String())
}
