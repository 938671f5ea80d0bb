// Package classify assigns job-cost rows to the hierarchy level their
// populated columns imply.
package classify

import "github.com/ukaji3/shopstat-go/pkg/shopstat/models"

// Kind is the hierarchy level of a row.
type Kind int

const (
	// Other is a blank, separator or otherwise unrecognized row.
	Other Kind = iota
	// Header introduces a customer/project and mark.
	Header
	// Job introduces a job under the current header.
	Job
	// Component details one part consumed by or purchased for the current job.
	Component
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Header:
		return "header"
	case Job:
		return "job"
	case Component:
		return "component"
	default:
		return "other"
	}
}

// Classify returns the kind of row. The checks are applied in order, so a
// row carrying both a mark/customer pair and a job is a Header.
func Classify(row models.Row) Kind {
	switch {
	case row.Mark.Truthy() && row.Customer.Truthy():
		return Header
	case row.Job.Truthy():
		return Job
	case row.Component.Truthy():
		return Component
	default:
		return Other
	}
}

// Context is the customer, mark and job in effect for the rows that follow
// them. The zero value has nothing in effect.
type Context struct {
	Customer models.Cell
	Mark     models.Cell
	Job      models.Cell
}

// Apply classifies row and moves the context forward. Header rows replace
// the customer and mark and leave the job alone; Job rows replace the job.
func (c *Context) Apply(row models.Row) Kind {
	kind := Classify(row)
	switch kind {
	case Header:
		c.Customer = row.Customer
		c.Mark = row.Mark
	case Job:
		c.Job = row.Job
	}
	return kind
}

// HasJob reports whether a job is in effect.
func (c Context) HasJob() bool {
	return c.Job.Truthy()
}
