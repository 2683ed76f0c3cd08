package controllers

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/profinder-dev/profinder/config"
	"github.com/profinder-dev/profinder/models"
	"github.com/profinder-dev/profinder/utils"
)

func reportWindow(period string, now time.Time) (time.Time, time.Time, bool) {
	switch period {
	case "day":
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		end := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999999999, now.Location())
		return start, end, true
	case "week":
		end := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999999999, now.Location())
		start := end.AddDate(0, 0, -6)
		start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
		return start, end, true
	case "month":
		start := now.AddDate(0, 0, -30).Truncate(24 * time.Hour)
		end := now.Add(24 * time.Hour)
		return start, end, true
	}
	return time.Time{}, time.Time{}, false
}

// GetDashboardStats returns the aggregate counters shown on the
// super-admin dashboard
func GetDashboardStats(c *gin.Context) {
	utils.LogInfo("GetDashboardStats called")

	var totalUsers, totalProfessionals, pendingVerifications int64
	var totalRequests, activeRequests int64
	var totalPayments int64
	var totalRevenue float64

	config.DB.Model(&models.User{}).Count(&totalUsers)
	config.DB.Model(&models.Professional{}).Where("verification_status = ?", models.VerificationStatusVerified).Count(&totalProfessionals)
	config.DB.Model(&models.Professional{}).Where("verification_status = ?", models.VerificationStatusPending).Count(&pendingVerifications)
	config.DB.Model(&models.ServiceRequest{}).Count(&totalRequests)
	config.DB.Model(&models.ServiceRequest{}).Where("status IN ?", []string{models.RequestStatusPending, models.RequestStatusApproved, models.RequestStatusInProgress}).Count(&activeRequests)
	config.DB.Model(&models.Payment{}).Where("status = ?", models.PaymentStatusSuccess).Count(&totalPayments)
	config.DB.Model(&models.Payment{}).Where("status = ?", models.PaymentStatusSuccess).
		Select("COALESCE(SUM(amount), 0)").Scan(&totalRevenue)

	utils.Success(c, "Dashboard stats retrieved", gin.H{
		"total_users":           totalUsers,
		"verified_professionals": totalProfessionals,
		"pending_verifications": pendingVerifications,
		"total_requests":        totalRequests,
		"active_requests":       activeRequests,
		"successful_payments":   totalPayments,
		"total_revenue":         math.Round(totalRevenue*100) / 100,
	})
}

// DownloadPaymentsReportExcel exports payments for a period as an xlsx sheet
func DownloadPaymentsReportExcel(c *gin.Context) {
	utils.LogInfo("DownloadPaymentsReportExcel called")

	period := c.DefaultQuery("period", "day")
	utils.LogDebug("Generating Excel report for period: %s", period)

	startDate, endDate, ok := reportWindow(period, time.Now())
	if !ok {
		utils.LogError("Invalid period specified: %s", period)
		utils.BadRequest(c, "Invalid period", "Period must be day, week, or month")
		return
	}

	var payments []models.Payment
	query := config.DB.Where("created_at >= ? AND created_at <= ?", startDate, endDate).
		Preload("User").
		Preload("Professional").
		Order("created_at DESC")
	if err := query.Find(&payments).Error; err != nil {
		utils.LogError("Failed to fetch payments: %v", err)
		utils.InternalServerError(c, "Failed to fetch payments", err.Error())
		return
	}
	utils.LogDebug("Retrieved %d payments for Excel report", len(payments))

	// --- Calculate summary ---
	var summary struct {
		TotalAttempts  int
		Successful     int
		Failed         int
		Cancelled      int
		TotalRevenue   float64
		TotalCustomers int
		AveragePayment float64
	}
	customerSet := make(map[uint]bool)
	for _, payment := range payments {
		summary.TotalAttempts++
		customerSet[payment.UserID] = true
		switch payment.Status {
		case models.PaymentStatusSuccess:
			summary.Successful++
			summary.TotalRevenue += payment.Amount
		case models.PaymentStatusFailed:
			summary.Failed++
		case models.PaymentStatusCancelled:
			summary.Cancelled++
		}
	}
	summary.TotalCustomers = len(customerSet)
	if summary.Successful > 0 {
		summary.AveragePayment = math.Round((summary.TotalRevenue/float64(summary.Successful))*100) / 100
	}
	summary.TotalRevenue = math.Round(summary.TotalRevenue*100) / 100

	// --- Excel Generation ---
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Payments Report")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", err.Error())
		return
	}

	companyRow := sheet.AddRow()
	companyRow.AddCell().SetString(utils.AppName + " - Payments Report")
	companyRow = sheet.AddRow()
	companyRow.AddCell().SetString("Email: support@profinder.example.com")
	companyRow = sheet.AddRow()
	companyRow.AddCell().SetString("Period: " + strings.ToUpper(period) + " | " + startDate.Format("2006-01-02") + " to " + endDate.Format("2006-01-02"))
	sheet.AddRow() // spacing

	headers := []string{"Payment ID", "User ID", "Username", "Professional", "Date", "Amount", "Currency", "Order ID", "Status"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		cell := headerRow.AddCell()
		cell.SetString(h)
		style := xlsx.NewStyle()
		font := xlsx.DefaultFont()
		font.Bold = true
		style.Font = *font
		cell.SetStyle(style)
	}

	for _, payment := range payments {
		row := sheet.AddRow()
		row.AddCell().SetInt(int(payment.ID))
		row.AddCell().SetInt(int(payment.UserID))
		row.AddCell().SetString(payment.User.Username)
		if payment.Professional != nil {
			row.AddCell().SetString(payment.Professional.Name)
		} else {
			row.AddCell().SetString("-")
		}
		row.AddCell().SetString(payment.CreatedAt.Format("2006-01-02 15:04"))
		row.AddCell().SetFloat(payment.Amount)
		row.AddCell().SetString(payment.Currency)
		row.AddCell().SetString(payment.RazorpayOrderID)
		row.AddCell().SetString(payment.Status)
	}

	sheet.AddRow() // spacing

	summaryRow := sheet.AddRow()
	summaryRow.AddCell().SetString("Summary")
	style := xlsx.NewStyle()
	font := xlsx.DefaultFont()
	font.Bold = true
	style.Font = *font
	summaryRow.Cells[0].SetStyle(style)

	summaryData := [][]string{
		{"Total Attempts", fmt.Sprintf("%d", summary.TotalAttempts)},
		{"Successful", fmt.Sprintf("%d", summary.Successful)},
		{"Failed", fmt.Sprintf("%d", summary.Failed)},
		{"Cancelled", fmt.Sprintf("%d", summary.Cancelled)},
		{"Total Revenue", fmt.Sprintf("%.2f", summary.TotalRevenue)},
		{"Total Customers", fmt.Sprintf("%d", summary.TotalCustomers)},
		{"Avg. Payment", fmt.Sprintf("%.2f", summary.AveragePayment)},
	}
	for _, data := range summaryData {
		row := sheet.AddRow()
		row.AddCell().SetString(data[0])
		row.AddCell().SetString(data[1])
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=payments_report_%s.xlsx", period))
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
		utils.InternalServerError(c, "Failed to write Excel file", err.Error())
		return
	}
	utils.LogInfo("Successfully generated Excel report for period %s", period)
}
