package domain

const ApologyResponse = "I apologize, but I encountered an error processing your request. Please try again."
