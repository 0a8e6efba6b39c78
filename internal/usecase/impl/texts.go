package impl

// User-facing reply texts. The transport renders them verbatim inside its
// message envelope; *asterisks* are the channel's emphasis markers.

const welcomeText = `👋 Welcome to Business Directory!

🔍 *Search*: Send keywords like 'pizza', 'hotel'
📝 *Register*: Send 'register' to add your business
❓ *Help*: Send 'help' for more options`

const helpText = `🏢 *Business Directory Bot*

🔍 *SEARCH FOR BUSINESSES:*
Send keywords like:
• restaurant, pizza, food
• hotel, accommodation
• pharmacy, medicine
• repair, tech, service

📍 *SEARCH BY LOCATION:*
• "near downtown" - Find businesses near downtown
• "near airport" - Find businesses near airport

📝 *REGISTER YOUR BUSINESS:*
• Send 'register' to add your business
• It's FREE and takes 2 minutes!

❓ *OTHER COMMANDS:*
• 'help' - Show this menu
• 'contact' - Get support
• 'stats' - Directory statistics`

const contactTextFmt = `📞 *Need Help?*

For support or questions:
• Email: %s
• Reply 'help' for commands`

const apologyText = `Sorry, something went wrong. Please try again or send 'help' for assistance.`

// Registration dialogue.

const startPromptText = `📝 *Business Registration*

Let's add your business to our directory!

*Step 1 of 5:* What's your business name?

Example: "Mario's Pizza Restaurant"

💡 Type 'cancel' anytime to stop registration.`

const registerHintText = `Send 'register' to add your business or 'help' for other options.`

const cancelledText = `❌ Registration cancelled. Send 'register' to start again or 'help' for other options.`

const promptAddressFmt = `✅ Business name: %s

*Step 2 of 5:* What's your business address?

Example: "123 Main Street, Downtown, City"

Include area/neighborhood for better visibility!`

const promptPhoneText = `✅ Address saved!

*Step 3 of 5:* What's your business phone number?

Example: "+1234567890" or "0712345678"

This helps customers contact you directly.`

const promptEmailText = `✅ Phone number saved!

*Step 4 of 5:* What's your business email? (Optional)

Example: "info@mybusiness.com"

💡 Send 'skip' if you don't have a business email.`

const promptKeywordsText = `✅ Email saved!

*Step 5 of 5:* What keywords describe your business?

Separate with commas. This helps customers find you!

Examples:
• "pizza, restaurant, italian, delivery"
• "hotel, accommodation, lodging"
• "pharmacy, medicine, health, drugs"

💡 Include 3-8 relevant keywords.`

const warnNameTooShort = `⚠️ Business name seems too short. Please enter your full business name:`

const warnAddressTooShort = `⚠️ Please provide a more complete address including street and area:`

const warnPhoneInvalid = `⚠️ Please enter a valid phone number:

Examples:
• +1234567890
• 0712345678
• 555-123-4567`

const warnEmailInvalid = `⚠️ Please enter a valid email address or send 'skip':

Example: info@mybusiness.com`

const warnKeywordsTooFew = `⚠️ Please provide at least 2 keywords, separated by commas:

Example: restaurant, pizza, delivery, italian`

const registrationFailedText = `❌ Sorry, there was an error completing your registration. Please try again later or contact support.`

const confirmationFmt = `🎉 *Registration Complete!*

Your business has been added to our directory:

🏢 *%s*
📍 %s
📞 %s
📧 %s
🏷️ Keywords: %s

✅ Customers can now find your business by searching for any of your keywords!

💡 *Tips:*
• Share this bot with customers
• Tell them to search: %s
• Need changes? Contact support

Thank you for joining our directory! 🙏

Business ID: #%s`

// Search and statistics.

const searchErrorText = `Sorry, there was an error searching. Please try again.`

const locationErrorText = `Sorry, there was an error searching by location. Please try again.`

const searchFoundFmt = "🔍 Found %d business(es) for '%s':\n\n"

const locationFoundFmt = "📍 Found %d business(es) near '%s':\n\n"

const moreResultsFmt = "... and %d more results.\n\n"

const searchTipsText = `💡 Can't find what you're looking for?
• Try different keywords
• Send 'register' to add your business`

const locationTipsText = `💡 Try searching by business type too!`

const noResultsFmt = `❌ No businesses found for '%s'.

💡 *Try these keywords:*
• restaurant, pizza, food
• hotel, accommodation
• pharmacy, medicine
• repair, service

🏢 *Own a business?*
Send 'register' to add it FREE!`

const noLocationResultsFmt = `📍 No businesses found near '%s'.

💡 *Try searching by:*
• Business type: restaurant, hotel, pharmacy
• Different location: downtown, airport, mall
• Send 'register' to add your business`

const statsFallbackText = `📊 Directory is growing daily!

💡 Send 'register' to add your business FREE!`
