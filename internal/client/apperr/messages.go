package apperr

var categoryMessages = map[Category]string{
	CategoryValidation:   "Please check your input and try again.",
	CategoryAuth:         "You are not authorized. Please sign in again.",
	CategoryNotFound:     "The requested record was not found.",
	CategoryConflict:     "This record already exists.",
	CategoryRateLimited:  "Too many attempts. Please try again later.",
	CategoryServer:       "Something went wrong on our end. Please try again later.",
	CategoryConnectivity: "Unable to reach the server. Check your connection and try again.",
}

var opMessages = map[Op]map[Category]string{
	OpLogin: {
		CategoryAuth:     "Invalid email or password.",
		CategoryNotFound: "No account is registered with this email.",
	},
	OpRegister: {
		CategoryConflict: "An account with this email already exists.",
	},
	OpForgotPassword: {
		CategoryNotFound: "No account is registered with this email.",
	},
	OpVerifyOTP: {
		CategoryValidation: "The code you entered is invalid or expired.",
		CategoryNotFound:   "The code you entered is invalid or expired.",
	},
	OpComplaints: {
		CategoryAuth: "Please sign in to view your complaints.",
	},
}

var opFallbacks = map[Op]string{
	OpLogin:          "Login failed. Please try again.",
	OpRegister:       "Registration failed. Please try again.",
	OpForgotPassword: "Could not send the reset link. Please try again.",
	OpVerifyOTP:      "Verification failed. Please try again.",
	OpResendOTP:      "Could not resend the code. Please try again.",
	OpAnnouncements:  "Failed to load announcements",
	OpComplaints:     "Failed to load complaints",
}

const genericFallback = "Something went wrong. Please try again."

func messageFor(op Op, c Category) string {
	if byCat, ok := opMessages[op]; ok {
		if msg, ok := byCat[c]; ok {
			return msg
		}
	}
	if c != CategoryUnknown {
		if msg, ok := categoryMessages[c]; ok {
			return msg
		}
	}
	if msg, ok := opFallbacks[op]; ok {
		return msg
	}
	return genericFallback
}
