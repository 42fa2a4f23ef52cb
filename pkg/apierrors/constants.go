package apierrors

const (
	MsgInternalError          = "internalError"
	MsgPageNotFound           = "pageNotFound"
	MsgInvalidTaskID          = "invalidTaskID"
	MsgTaskNotFound           = "taskNotFound"
	MsgFailLoadDashboard      = "failLoadDashboard"
	MsgFailCreateTask         = "failCreateTask"
	MsgFailUpdateTask         = "failUpdateTask"
	MsgFailDeleteTask         = "failDeleteTask"
	MsgFailToggleTask         = "failToggleTask"
	MsgInvalidCredentials     = "invalidCredentials"
	MsgUsernameTaken          = "usernameTaken"
	MsgEmailTaken             = "emailTaken"
	MsgAuthenticationRequired = "authenticationRequired"
	MsgTooManyRequests        = "tooManyRequests"
)

// Notices shown after a redirect.
const (
	MsgRegistrationSuccessful = "registrationSuccessful"
	MsgLoginRequired          = "loginRequired"
	MsgLoggedOut              = "loggedOut"
	MsgTaskAdded              = "taskAdded"
	MsgTaskUpdated            = "taskUpdated"
	MsgTaskDeleted            = "taskDeleted"
)
