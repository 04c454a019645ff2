package settings

// Field tables per settings section. Form names are the camelCase keys the
// back-office forms bind to; wire names are the backend's snake_case columns.

var (
	outletSettingsFields = []Field{
		{Form: "outletid", Wire: "outletid", Kind: KindInt},
		{Form: "outletName", Wire: "outlet_name", Kind: KindString},
		{Form: "outletCode", Wire: "outlet_code", Kind: KindString},
		{Form: "brandName", Wire: "brand_name", Kind: KindString},
		{Form: "billRoundOff", Wire: "bill_round_off", Kind: KindBool},
		{Form: "allowMultipleTax", Wire: "allow_multiple_tax", Kind: KindBool},
		{Form: "multiplePriceSetting", Wire: "multiple_price_setting", Kind: KindBool},
		{Form: "enablePax", Wire: "enable_pax", Kind: KindBool},
		{Form: "defaultWaiterId", Wire: "default_waiter_id", Kind: KindInt},
		{Form: "enableLoyalty", Wire: "enable_loyalty", Kind: KindBool},
		{Form: "enableCallCenter", Wire: "enable_call_center", Kind: KindBool},
		{Form: "tableReservation", Wire: "table_reservation", Kind: KindBool},
		{Form: "sendReportEmail", Wire: "send_report_email", Kind: KindBool},
		{Form: "sendReportWhatsapp", Wire: "send_report_whatsapp", Kind: KindBool},
		{Form: "verifyPosSystemLogin", Wire: "verify_pos_system_login", Kind: KindBool},
		{Form: "autoUpdatePos", Wire: "auto_update_pos", Kind: KindBool},
		{Form: "nextResetKotDays", Wire: "next_reset_kot_days", Kind: KindString},
		{Form: "nextResetKotDate", Wire: "next_reset_kot_date", Kind: KindString},
		{Form: "zomatoEnabled", Wire: "zomato_enabled", Kind: KindBool},
		{Form: "swiggyEnabled", Wire: "swiggy_enabled", Kind: KindBool},
		{Form: "ubereatsEnabled", Wire: "ubereats_enabled", Kind: KindBool},
		{Form: "magicpinEnabled", Wire: "magicpin_enabled", Kind: KindBool},
		{Form: "dunzoEnabled", Wire: "dunzo_enabled", Kind: KindBool},
		{Form: "tallyIntegration", Wire: "tally_integration", Kind: KindBool},
		{Form: "phonepeIntegration", Wire: "phonepe_integration", Kind: KindBool},
		{Form: "bharatpeIntegration", Wire: "bharatpe_integration", Kind: KindBool},
		{Form: "sunmiIntegration", Wire: "sunmi_integration", Kind: KindBool},
		{Form: "reeloIntegration", Wire: "reelo_integration", Kind: KindBool},
		{Form: "zomatoPayIntegration", Wire: "zomato_pay_integration", Kind: KindBool},
	}
	billPreviewSettingsFields = []Field{
		{Form: "outletid", Wire: "outletid", Kind: KindInt},
		{Form: "outletName", Wire: "outlet_name", Kind: KindString},
		{Form: "email", Wire: "email", Kind: KindString},
		{Form: "website", Wire: "website", Kind: KindString},
		{Form: "upiId", Wire: "upi_id", Kind: KindString},
		{Form: "billPrefix", Wire: "bill_prefix", Kind: KindString},
		{Form: "secondaryBillPrefix", Wire: "secondary_bill_prefix", Kind: KindString},
		{Form: "barBillPrefix", Wire: "bar_bill_prefix", Kind: KindString},
		{Form: "showUpiQr", Wire: "show_upi_qr", Kind: KindBool},
		{Form: "enabledBarSection", Wire: "enabled_bar_section", Kind: KindBool},
		{Form: "showPhoneOnBill", Wire: "show_phone_on_bill", Kind: KindBool},
		{Form: "note", Wire: "note", Kind: KindString},
		{Form: "footerNote", Wire: "footer_note", Kind: KindString},
		{Form: "field1", Wire: "field1", Kind: KindString},
		{Form: "field2", Wire: "field2", Kind: KindString},
		{Form: "field3", Wire: "field3", Kind: KindString},
		{Form: "field4", Wire: "field4", Kind: KindString},
		{Form: "fssaiNo", Wire: "fssai_no", Kind: KindString},
	}
	kotPrintSettingsFields = []Field{
		{Form: "outletid", Wire: "outletid", Kind: KindInt},
		{Form: "customerOnKotDineIn", Wire: "customer_on_kot_dine_in", Kind: KindBool},
		{Form: "customerOnKotPickup", Wire: "customer_on_kot_pickup", Kind: KindBool},
		{Form: "customerOnKotDelivery", Wire: "customer_on_kot_delivery", Kind: KindBool},
		{Form: "customerOnKotQuickBill", Wire: "customer_on_kot_quick_bill", Kind: KindBool},
		{Form: "customerKotDisplayOption", Wire: "customer_kot_display_option", Kind: KindString},
		{Form: "groupKotItemsByCategory", Wire: "group_kot_items_by_category", Kind: KindBool},
		{Form: "hideTableNameQuickBill", Wire: "hide_table_name_quick_bill", Kind: KindBool},
		{Form: "showNewOrderTag", Wire: "show_new_order_tag", Kind: KindBool},
		{Form: "newOrderTagLabel", Wire: "new_order_tag_label", Kind: KindString},
		{Form: "showRunningOrderTag", Wire: "show_running_order_tag", Kind: KindBool},
		{Form: "runningOrderTagLabel", Wire: "running_order_tag_label", Kind: KindString},
		{Form: "dineInKotNo", Wire: "dine_in_kot_no", Kind: KindString},
		{Form: "pickupKotNo", Wire: "pickup_kot_no", Kind: KindString},
		{Form: "deliveryKotNo", Wire: "delivery_kot_no", Kind: KindString},
		{Form: "quickBillKotNo", Wire: "quick_bill_kot_no", Kind: KindString},
		{Form: "modifierDefaultOption", Wire: "modifier_default_option", Kind: KindBool},
		{Form: "printKotBothLanguages", Wire: "print_kot_both_languages", Kind: KindBool},
		{Form: "showAlternativeItem", Wire: "show_alternative_item", Kind: KindBool},
		{Form: "showCaptainUsername", Wire: "show_captain_username", Kind: KindBool},
		{Form: "showCoversAsGuest", Wire: "show_covers_as_guest", Kind: KindBool},
		{Form: "showItemPrice", Wire: "show_item_price", Kind: KindBool},
		{Form: "showKotNoQuickBill", Wire: "show_kot_no_quick_bill", Kind: KindBool},
		{Form: "showKotNote", Wire: "show_kot_note", Kind: KindBool},
		{Form: "showOnlineOrderOtp", Wire: "show_online_order_otp", Kind: KindBool},
		{Form: "showOrderIdQuickBill", Wire: "show_order_id_quick_bill", Kind: KindBool},
		{Form: "showOrderIdOnlineOrder", Wire: "show_order_id_online_order", Kind: KindBool},
		{Form: "showOrderNoQuickBillSection", Wire: "show_order_no_quick_bill_section", Kind: KindBool},
		{Form: "showOrderTypeSymbol", Wire: "show_order_type_symbol", Kind: KindBool},
		{Form: "showStoreName", Wire: "show_store_name", Kind: KindBool},
		{Form: "showTerminalUsername", Wire: "show_terminal_username", Kind: KindBool},
		{Form: "showUsername", Wire: "show_username", Kind: KindBool},
		{Form: "showWaiter", Wire: "show_waiter", Kind: KindBool},
	}
	billPrintSettingsFields = []Field{
		{Form: "outletid", Wire: "outletid", Kind: KindInt},
		{Form: "billTitleDineIn", Wire: "bill_title_dine_in", Kind: KindBool},
		{Form: "billTitlePickup", Wire: "bill_title_pickup", Kind: KindBool},
		{Form: "billTitleDelivery", Wire: "bill_title_delivery", Kind: KindBool},
		{Form: "billTitleQuickBill", Wire: "bill_title_quick_bill", Kind: KindBool},
		{Form: "maskOrderId", Wire: "mask_order_id", Kind: KindBool},
		{Form: "modifierDefaultOptionBill", Wire: "modifier_default_option_bill", Kind: KindBool},
		{Form: "printBillBothLanguages", Wire: "print_bill_both_languages", Kind: KindBool},
		{Form: "showAltItemTitleBill", Wire: "show_alt_item_title_bill", Kind: KindBool},
		{Form: "showAltNameBill", Wire: "show_alt_name_bill", Kind: KindBool},
		{Form: "showBillAmountWords", Wire: "show_bill_amount_words", Kind: KindBool},
		{Form: "showBillNoBill", Wire: "show_bill_no_bill", Kind: KindBool},
		{Form: "showBillNumberPrefixBill", Wire: "show_bill_number_prefix_bill", Kind: KindBool},
		{Form: "showBillPrintCount", Wire: "show_bill_print_count", Kind: KindBool},
		{Form: "showBrandNameBill", Wire: "show_brand_name_bill", Kind: KindBool},
		{Form: "showCaptainBill", Wire: "show_captain_bill", Kind: KindBool},
		{Form: "showCoversBill", Wire: "show_covers_bill", Kind: KindBool},
		{Form: "showCustomQrCodesBill", Wire: "show_custom_qr_codes_bill", Kind: KindBool},
		{Form: "showCustomerGstBill", Wire: "show_customer_gst_bill", Kind: KindBool},
		{Form: "showCustomerBill", Wire: "show_customer_bill", Kind: KindBool},
		{Form: "showCustomerPaidAmount", Wire: "show_customer_paid_amount", Kind: KindBool},
		{Form: "showDateBill", Wire: "show_date_bill", Kind: KindBool},
		{Form: "showDefaultPayment", Wire: "show_default_payment", Kind: KindBool},
		{Form: "showDiscountReasonBill", Wire: "show_discount_reason_bill", Kind: KindBool},
		{Form: "showDueAmountBill", Wire: "show_due_amount_bill", Kind: KindBool},
		{Form: "showEbillInvoiceQrcode", Wire: "show_ebill_invoice_qrcode", Kind: KindBool},
		{Form: "showItemHsnCodeBill", Wire: "show_item_hsn_code_bill", Kind: KindBool},
		{Form: "showItemLevelChargesSeparately", Wire: "show_item_level_charges_separately", Kind: KindBool},
		{Form: "showItemNoteBill", Wire: "show_item_note_bill", Kind: KindBool},
		{Form: "showItemsSequenceBill", Wire: "show_items_sequence_bill", Kind: KindBool},
		{Form: "showKotNumberBill", Wire: "show_kot_number_bill", Kind: KindBool},
		{Form: "showLogoBill", Wire: "show_logo_bill", Kind: KindBool},
		{Form: "showOrderIdBill", Wire: "show_order_id_bill", Kind: KindBool},
		{Form: "showOrderNoBill", Wire: "show_order_no_bill", Kind: KindBool},
		{Form: "showOrderNoteBill", Wire: "show_order_note_bill", Kind: KindBool},
		{Form: "orderTypeDineIn", Wire: "order_type_dine_in", Kind: KindBool},
		{Form: "orderTypePickup", Wire: "order_type_pickup", Kind: KindBool},
		{Form: "orderTypeDelivery", Wire: "order_type_delivery", Kind: KindBool},
		{Form: "orderTypeQuickBill", Wire: "order_type_quick_bill", Kind: KindBool},
		{Form: "showOutletNameBill", Wire: "show_outlet_name_bill", Kind: KindBool},
		{Form: "paymentModeDineIn", Wire: "payment_mode_dine_in", Kind: KindBool},
		{Form: "paymentModePickup", Wire: "payment_mode_pickup", Kind: KindBool},
		{Form: "paymentModeDelivery", Wire: "payment_mode_delivery", Kind: KindBool},
		{Form: "paymentModeQuickBill", Wire: "payment_mode_quick_bill", Kind: KindBool},
		{Form: "tableNameDineIn", Wire: "table_name_dine_in", Kind: KindBool},
		{Form: "tableNamePickup", Wire: "table_name_pickup", Kind: KindBool},
		{Form: "tableNameDelivery", Wire: "table_name_delivery", Kind: KindBool},
		{Form: "tableNameQuickBill", Wire: "table_name_quick_bill", Kind: KindBool},
		{Form: "showTaxChargeBill", Wire: "show_tax_charge_bill", Kind: KindBool},
		{Form: "showUsernameBill", Wire: "show_username_bill", Kind: KindBool},
		{Form: "showWaiterBill", Wire: "show_waiter_bill", Kind: KindBool},
		{Form: "showZatcaInvoiceQr", Wire: "show_zatca_invoice_qr", Kind: KindBool},
		{Form: "showCustomerAddressPickupBill", Wire: "show_customer_address_pickup_bill", Kind: KindBool},
		{Form: "showOrderPlacedTime", Wire: "show_order_placed_time", Kind: KindBool},
		{Form: "hideItemQuantityColumn", Wire: "hide_item_quantity_column", Kind: KindBool},
		{Form: "hideItemRateColumn", Wire: "hide_item_rate_column", Kind: KindBool},
		{Form: "hideItemTotalColumn", Wire: "hide_item_total_column", Kind: KindBool},
		{Form: "hideTotalWithoutTax", Wire: "hide_total_without_tax", Kind: KindBool},
	}
	onlineOrderSettingsFields = []Field{
		{Form: "outletid", Wire: "outletid", Kind: KindInt},
		{Form: "showInPreparationKds", Wire: "show_in_preparation_kds", Kind: KindBool},
		{Form: "autoAcceptOnlineOrder", Wire: "auto_accept_online_order", Kind: KindBool},
		{Form: "customizeOrderPreparationTime", Wire: "customize_order_preparation_time", Kind: KindBool},
		{Form: "onlineOrdersTimeDelay", Wire: "online_orders_time_delay", Kind: KindInt},
		{Form: "pullOrderOnAccept", Wire: "pull_order_on_accept", Kind: KindBool},
		{Form: "showAddonsSeparately", Wire: "show_addons_separately", Kind: KindBool},
		{Form: "showCompleteOnlineOrderId", Wire: "show_complete_online_order_id", Kind: KindBool},
		{Form: "showOnlineOrderPreparationTime", Wire: "show_online_order_preparation_time", Kind: KindBool},
		{Form: "updateFoodReadyStatusKds", Wire: "update_food_ready_status_kds", Kind: KindBool},
	}
)
