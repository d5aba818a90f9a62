// Package feedbackservice owns customer feedback: customers file comments
// against a unit resolved by name, staff read them under unit scoping.
package feedbackservice
