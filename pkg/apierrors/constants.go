package apierrors

const (
	MsgInvalidRecurringTodoID      = "invalidRecurringTodoID"
	MsgInvalidRecurringTodoPayload = "invalidRecurringTodoPayload"
	MsgRecurringTodoNotFound       = "recurringTodoNotFound"
	MsgGroupNotFound               = "groupNotFound"
	MsgPermissionDenied            = "permissionDenied"
	MsgFailCreateRecurringTodo     = "failCreateRecurringTodo"
	MsgFailListRecurringTodos      = "failListRecurringTodos"
	MsgFailUpdateRecurringTodo     = "failUpdateRecurringTodo"
	MsgFailToggleRecurringTodo     = "failToggleRecurringTodo"
	MsgFailDeleteRecurringTodo     = "failDeleteRecurringTodo"
	MsgInvalidTodoPayload          = "invalidTodoPayload"
	MsgFailCreateTodo              = "failCreateTodo"
)
