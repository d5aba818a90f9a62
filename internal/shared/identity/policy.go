package identity

// Action names one authorizable operation.
type Action string

const (
	ActionInventoryRead   Action = "inventory.read"
	ActionInventoryWrite  Action = "inventory.write"
	ActionInventoryCreate Action = "inventory.create"

	ActionOrderPlace Action = "orders.place"
	ActionOrderList  Action = "orders.list"

	ActionFeedbackCreate Action = "feedback.create"
	ActionFeedbackList   Action = "feedback.list"

	ActionReportView Action = "reports.view"

	ActionNotificationReport Action = "notifications.report"
	ActionNotificationReview Action = "notifications.review"

	ActionUserManage Action = "users.manage"
	ActionUnitManage Action = "units.manage"
)

// roleActions is the full role -> action grant table. Unit scoping is a
// separate predicate (Actor.MayAccessUnit); this table only answers whether
// the role may perform the action at all.
var roleActions = map[Role]map[Action]struct{}{
	RoleAdmin: grants(
		ActionInventoryRead,
		ActionInventoryWrite,
		ActionInventoryCreate,
		ActionOrderList,
		ActionFeedbackList,
		ActionReportView,
		ActionNotificationReview,
		ActionUserManage,
		ActionUnitManage,
	),
	RoleEmployee: grants(
		ActionInventoryRead,
		ActionInventoryWrite,
		ActionOrderList,
		ActionFeedbackList,
		ActionReportView,
		ActionNotificationReport,
	),
	RoleCustomer: grants(
		ActionOrderPlace,
		ActionFeedbackCreate,
	),
}

func grants(actions ...Action) map[Action]struct{} {
	set := make(map[Action]struct{}, len(actions))
	for _, action := range actions {
		set[action] = struct{}{}
	}
	return set
}

// Allows evaluates whether the role grants the action. Unknown roles are
// denied.
func Allows(role Role, action Action) bool {
	actions, ok := roleActions[role]
	if !ok {
		return false
	}
	_, ok = actions[action]
	return ok
}
